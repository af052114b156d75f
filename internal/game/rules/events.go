package rules

import (
	"sync"
	"time"
)

// EventType indicates the category of a match event.
type EventType string

const (
	// Lifecycle events
	EventGameStarted  EventType = "GAME_STARTED"
	EventMulliganDone EventType = "MULLIGAN_DONE"
	EventGameEnded    EventType = "GAME_ENDED"

	// Turn events
	EventTurnStarted EventType = "TURN_STARTED"
	EventTurnEnded   EventType = "TURN_ENDED"

	// Draw events
	EventCardDrawn     EventType = "CARD_DRAWN"
	EventCardBurned    EventType = "CARD_BURNED"
	EventFatigueDamage EventType = "FATIGUE_DAMAGE"

	// Play events
	EventCardPlayed       EventType = "CARD_PLAYED"
	EventCreatureSummoned EventType = "CREATURE_SUMMONED"
	EventSpellResolved    EventType = "SPELL_RESOLVED"
	EventWeaponEquipped   EventType = "WEAPON_EQUIPPED"

	// Combat events
	EventAttackResolved    EventType = "ATTACK_RESOLVED"
	EventDamageDealt       EventType = "DAMAGE_DEALT"
	EventHealed            EventType = "HEALED"
	EventCreatureDestroyed EventType = "CREATURE_DESTROYED"
)

// Event is a single player-visible occurrence in a match. The match appends
// events to its history in order; history is never rewritten.
type Event struct {
	Type      EventType
	PlayerID  string
	Payload   map[string]any
	Timestamp time.Time
}

// NewEvent creates an event with the timestamp set to now.
func NewEvent(eventType EventType, playerID string, payload map[string]any) Event {
	if payload == nil {
		payload = make(map[string]any)
	}
	return Event{
		Type:      eventType,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

// EventBus provides a synchronous publish/subscribe implementation. The match
// publishes every event it appends; the transport layer subscribes to push
// events to connected clients.
type EventBus struct {
	mu         sync.RWMutex
	listeners  map[int]Listener
	nextHandle int
}

// NewEventBus constructs a fresh event bus instance.
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[int]Listener),
	}
}

// Subscribe registers a listener and returns a handle for unsubscribing.
func (bus *EventBus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	bus.mu.Lock()
	defer bus.mu.Unlock()
	handle := bus.nextHandle
	bus.nextHandle++
	bus.listeners[handle] = listener
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (bus *EventBus) Unsubscribe(handle int) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	delete(bus.listeners, handle)
}

// Publish delivers the event to all registered listeners synchronously.
func (bus *EventBus) Publish(event Event) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	for _, listener := range bus.listeners {
		listener(event)
	}
}
