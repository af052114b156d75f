package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/catalog"
	"github.com/duelforge/duel-server-go/internal/deck"
	"github.com/duelforge/duel-server-go/internal/game/rules"
)

// Win reasons recorded on the match when it ends.
const (
	WinReasonDefeated = "opponent defeated"
	WinReasonConcede  = "concede"
)

// Opening hand sizes. The player going second draws one extra card.
const (
	openingHandFirst  = 3
	openingHandSecond = 4
)

// PlayerSetup describes one contestant at match creation.
type PlayerSetup struct {
	ID   string
	Name string
	AI   bool
	Deck *deck.Deck
}

// Match orchestrates two players through the turn-phase protocol. It applies
// intents, enforces rules, detects the win condition, and records an
// append-only event history.
//
// A match is not safe for concurrent mutation: a single control thread must
// drive phase transitions and intent application strictly sequentially.
type Match struct {
	ID string

	logger *zap.Logger
	rng    *rand.Rand
	bus    *rules.EventBus

	phases  *rules.PhaseManager
	players [2]*Player
	history []rules.Event

	winnerID  string
	winReason string
}

// NewMatch validates both decks, shuffles them into draw piles, and creates
// a match in the Init phase. A match is never created from an invalid deck.
// The bus may be nil when no external consumer needs live events.
func NewMatch(setups [2]PlayerSetup, rng *rand.Rand, bus *rules.EventBus, logger *zap.Logger) (*Match, error) {
	for _, s := range setups {
		if s.Deck == nil {
			return nil, fmt.Errorf("player %s has no deck", s.Name)
		}
		if errs := s.Deck.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("deck %s invalid: %v", s.Deck.Name, errs[0])
		}
	}

	m := &Match{
		ID:     uuid.NewString(),
		logger: logger,
		rng:    rng,
		bus:    bus,
		phases: rules.NewPhaseManager(rng.Intn(2)),
	}
	for i, s := range setups {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		m.players[i] = NewPlayer(id, s.Name, s.AI, s.Deck.Pile(rng))
	}
	return m, nil
}

// Start deals opening hands and enters the Mulligan phase. The player going
// first draws three cards, the player going second draws four.
func (m *Match) Start() error {
	if m.phases.Phase() != rules.PhaseInit {
		return fmt.Errorf("match already started (phase %s)", m.phases.Phase())
	}

	m.appendEvent(rules.EventGameStarted, "", map[string]any{
		"player1_id": m.players[0].ID,
		"player2_id": m.players[1].ID,
		"first":      m.players[m.phases.ActiveIndex()].ID,
	})

	first := m.phases.ActiveIndex()
	for i, p := range m.players {
		n := openingHandFirst
		if i != first {
			n = openingHandSecond
		}
		for j := 0; j < n; j++ {
			p.DrawCard()
		}
	}

	if err := m.phases.Advance(rules.PhaseMulligan); err != nil {
		return err
	}

	if m.logger != nil {
		m.logger.Info("match started",
			zap.String("match_id", m.ID),
			zap.String("player1", m.players[0].Name),
			zap.String("player2", m.players[1].Name),
		)
	}
	return nil
}

// Players returns both players in seating order.
func (m *Match) Players() [2]*Player {
	return m.players
}

// ActivePlayer returns the player whose turn it is.
func (m *Match) ActivePlayer() *Player {
	return m.players[m.phases.ActiveIndex()]
}

// Opponent returns the other player.
func (m *Match) Opponent(p *Player) *Player {
	if m.players[0] == p {
		return m.players[1]
	}
	return m.players[0]
}

// Phase returns the current phase.
func (m *Match) Phase() rules.Phase {
	return m.phases.Phase()
}

// Turn returns the number of player-turns started so far.
func (m *Match) Turn() int {
	return m.phases.TurnNumber()
}

// Winner returns the winner id and reason once the match has ended.
func (m *Match) Winner() (string, string) {
	return m.winnerID, m.winReason
}

// History returns a copy of the append-only event history.
func (m *Match) History() []rules.Event {
	out := make([]rules.Event, len(m.history))
	copy(out, m.history)
	return out
}

// Submit applies a single intent. Rejections leave state unchanged; the
// result code tells the driver why.
func (m *Match) Submit(intent Intent) Result {
	if m.phases.Terminal() {
		return rejected(ResultGameNotRunning, "match is over")
	}

	player := m.playerByID(intent.PlayerID)
	if player == nil {
		return rejected(ResultUnknownPlayer, "unknown player %s", intent.PlayerID)
	}

	switch intent.Kind {
	case IntentConcede:
		m.endGame(m.Opponent(player), WinReasonConcede)
		return accepted()
	case IntentMulligan, IntentKeepHand:
		return m.applyMulligan(player, intent)
	case IntentPlayCard:
		return m.applyPlayCard(player, intent)
	case IntentAttack:
		return m.applyAttack(player, intent)
	case IntentEndTurn:
		return m.applyEndTurn(player)
	default:
		return rejected(ResultUnknownIntent, "unknown intent kind %d", int(intent.Kind))
	}
}

func (m *Match) playerByID(id string) *Player {
	for _, p := range m.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// applyMulligan handles the one optional hand replacement per player. Cards
// chosen for replacement are redrawn first and then shuffled back, so a
// player cannot redraw the card just thrown back.
func (m *Match) applyMulligan(player *Player, intent Intent) Result {
	if m.phases.Phase() != rules.PhaseMulligan {
		return rejected(ResultWrongPhase, "mulligan only allowed during %s", rules.PhaseMulligan)
	}
	if player.KeptHand {
		return rejected(ResultAlreadyKept, "player %s already kept their hand", player.Name)
	}

	if intent.Kind == IntentMulligan && len(intent.Replace) > 0 {
		returned := make([]*catalog.Card, 0, len(intent.Replace))
		seen := make(map[int]bool)
		for _, idx := range intent.Replace {
			if idx < 0 || idx >= len(player.Hand) || seen[idx] {
				return rejected(ResultInvalidTarget, "invalid hand index %d", idx)
			}
			seen[idx] = true
		}
		// Remove from the highest index down so earlier indexes stay valid.
		for i := len(player.Hand) - 1; i >= 0; i-- {
			if seen[i] {
				returned = append(returned, player.Hand[i])
				player.Hand = append(player.Hand[:i], player.Hand[i+1:]...)
			}
		}
		for range returned {
			player.DrawCard()
		}
		player.DrawPile = append(player.DrawPile, returned...)
		m.rng.Shuffle(len(player.DrawPile), func(i, j int) {
			player.DrawPile[i], player.DrawPile[j] = player.DrawPile[j], player.DrawPile[i]
		})
		player.Mulligans++
	}

	player.KeptHand = true
	m.appendEvent(rules.EventMulliganDone, player.ID, map[string]any{
		"replaced": len(intent.Replace),
	})

	if m.players[0].KeptHand && m.players[1].KeptHand {
		return m.beginTurn()
	}
	return accepted()
}

// beginTurn runs StartTurn setup for the active player: advance max mana,
// refresh, draw one (skipped on the very first turn of the game), reset
// creature flags. A win check runs before Main is entered, so fatigue death
// on the draw short-circuits the turn.
func (m *Match) beginTurn() Result {
	if err := m.phases.Advance(rules.PhaseStartTurn); err != nil {
		return rejected(ResultWrongPhase, "%v", err)
	}

	active := m.ActivePlayer()
	active.IncreaseMaxMana(1)
	active.RefreshMana()
	active.StartTurn()

	m.appendEvent(rules.EventTurnStarted, active.ID, map[string]any{
		"turn": m.phases.TurnNumber(),
	})

	if m.phases.TurnNumber() > 1 {
		m.drawFor(active)
	}

	if m.checkWinCondition() {
		return accepted()
	}

	if err := m.phases.Advance(rules.PhaseMain); err != nil {
		return rejected(ResultWrongPhase, "%v", err)
	}
	return accepted()
}

// drawFor draws one card for the player and records the outcome event.
func (m *Match) drawFor(p *Player) DrawResult {
	res := p.DrawCard()
	switch res.Outcome {
	case DrawDrawn:
		m.appendEvent(rules.EventCardDrawn, p.ID, map[string]any{
			"card_id": res.Card.ID,
		})
	case DrawBurned:
		m.appendEvent(rules.EventCardBurned, p.ID, map[string]any{
			"card_id": res.Card.ID,
		})
	case DrawFatigue:
		m.appendEvent(rules.EventFatigueDamage, p.ID, map[string]any{
			"amount": res.Fatigue,
		})
	}
	return res
}

func (m *Match) applyEndTurn(player *Player) Result {
	if m.phases.Phase() != rules.PhaseMain {
		return rejected(ResultWrongPhase, "cannot end turn during %s", m.phases.Phase())
	}
	if player != m.ActivePlayer() {
		return rejected(ResultNotYourTurn, "it is not %s's turn", player.Name)
	}

	if err := m.phases.Advance(rules.PhaseEndTurn); err != nil {
		return rejected(ResultWrongPhase, "%v", err)
	}
	m.appendEvent(rules.EventTurnEnded, player.ID, map[string]any{
		"turn": m.phases.TurnNumber(),
	})

	m.phases.SwapActive()
	return m.beginTurn()
}

func (m *Match) applyPlayCard(player *Player, intent Intent) Result {
	if m.phases.Phase() != rules.PhaseMain {
		return rejected(ResultWrongPhase, "cannot play cards during %s", m.phases.Phase())
	}
	if player != m.ActivePlayer() {
		return rejected(ResultNotYourTurn, "it is not %s's turn", player.Name)
	}
	card := player.CardInHand(intent.CardID)
	if card == nil {
		return rejected(ResultCardNotInHand, "card %s not in hand", intent.CardID)
	}
	if player.Mana < card.Cost {
		return rejected(ResultInsufficientMana, "card %s costs %d, have %d mana", card.ID, card.Cost, player.Mana)
	}

	switch card.Type {
	case catalog.TypeCreature:
		return m.playCreature(player, card)
	case catalog.TypeSpell:
		return m.playSpell(player, card, intent.TargetID)
	case catalog.TypeWeapon:
		return m.playWeapon(player, card)
	default:
		return rejected(ResultUnknownIntent, "card %s has unknown type", card.ID)
	}
}

func (m *Match) playCreature(player *Player, card *catalog.Card) Result {
	if len(player.Battlefield) >= MaxBattlefield {
		return rejected(ResultBoardFull, "battlefield already holds %d creatures", MaxBattlefield)
	}

	creature, err := NewCreature(card)
	if err != nil {
		return rejected(ResultUnknownIntent, "%v", err)
	}

	player.SpendMana(card.Cost)
	player.RemoveFromHand(card.ID)
	player.AddToBattlefield(creature, -1)

	m.appendEvent(rules.EventCardPlayed, player.ID, map[string]any{
		"card_id": card.ID,
	})
	m.appendEvent(rules.EventCreatureSummoned, player.ID, map[string]any{
		"card_id":     card.ID,
		"instance_id": creature.InstanceID,
	})

	m.resolveAbilities(player, card, catalog.TriggerOnPlay)
	m.sweepDead()
	m.checkWinCondition()
	return accepted()
}

func (m *Match) playSpell(player *Player, card *catalog.Card, targetID string) Result {
	// Spell targeting is unimplemented: ValidTargets returns no targets, so
	// every spell resolves untargeted.
	if targetID != "" {
		return rejected(ResultInvalidTarget, "spell %s takes no target", card.ID)
	}

	player.SpendMana(card.Cost)
	player.RemoveFromHand(card.ID)

	m.appendEvent(rules.EventCardPlayed, player.ID, map[string]any{
		"card_id": card.ID,
	})

	m.resolveAbilities(player, card, catalog.TriggerOnPlay)

	m.appendEvent(rules.EventSpellResolved, player.ID, map[string]any{
		"card_id": card.ID,
	})

	m.sweepDead()
	m.checkWinCondition()
	return accepted()
}

func (m *Match) playWeapon(player *Player, card *catalog.Card) Result {
	player.SpendMana(card.Cost)
	player.RemoveFromHand(card.ID)
	player.Weapon = &Weapon{Card: card, Attack: card.Attack, Durability: card.Durability}

	m.appendEvent(rules.EventCardPlayed, player.ID, map[string]any{
		"card_id": card.ID,
	})
	m.appendEvent(rules.EventWeaponEquipped, player.ID, map[string]any{
		"card_id":    card.ID,
		"attack":     card.Attack,
		"durability": card.Durability,
	})
	return accepted()
}

// ValidTargets returns the legal explicit targets for a spell. It currently
// returns none for every spell, so all spells are untargeted.
func (m *Match) ValidTargets(card *catalog.Card) []string {
	return nil
}

// spellDamageBonus is the extra spell damage granted by the player's living
// SpellDamage creatures.
func (m *Match) spellDamageBonus(player *Player) int {
	bonus := 0
	for _, c := range player.Battlefield {
		if c.Alive() && c.HasKeyword(catalog.KeywordSpellDamage) {
			bonus++
		}
	}
	return bonus
}

// resolveAbilities applies the card's abilities for the given trigger on
// behalf of the owner. Untargeted subjects: damage hits the enemy hero,
// healing restores the own hero, buffs apply to all friendly creatures.
func (m *Match) resolveAbilities(owner *Player, card *catalog.Card, trigger catalog.AbilityTrigger) {
	for _, ab := range card.Abilities {
		if ab.Trigger != trigger {
			continue
		}
		switch ab.Effect {
		case catalog.EffectDealDamage:
			amount := ab.Amount
			if card.Type == catalog.TypeSpell {
				amount += m.spellDamageBonus(owner)
			}
			enemy := m.Opponent(owner)
			applied := enemy.TakeDamage(amount)
			m.appendEvent(rules.EventDamageDealt, owner.ID, map[string]any{
				"source_card": card.ID,
				"target":      TargetFace,
				"amount":      applied,
			})
		case catalog.EffectDrawCards:
			for i := 0; i < ab.Amount; i++ {
				m.drawFor(owner)
			}
		case catalog.EffectHeal:
			applied := owner.Heal(ab.Amount)
			m.appendEvent(rules.EventHealed, owner.ID, map[string]any{
				"source_card": card.ID,
				"amount":      applied,
			})
		case catalog.EffectBuffAttack:
			for _, c := range owner.Battlefield {
				if c.Alive() {
					c.AddModifier(Modifier{Attack: ab.Amount, TurnsLeft: -1})
				}
			}
		case catalog.EffectBuffHealth:
			for _, c := range owner.Battlefield {
				if c.Alive() {
					c.AddModifier(Modifier{Health: ab.Amount, TurnsLeft: -1})
				}
			}
		}
	}
}

// LegalAttackTargets returns the enemy creatures an attack may target.
// Stealth creatures cannot be targeted; if any Taunt creature is alive only
// Taunt creatures are legal, and the face is not.
func LegalAttackTargets(enemy *Player) (targets []*Creature, faceAllowed bool) {
	taunt := false
	for _, c := range enemy.Battlefield {
		if c.Alive() && c.HasKeyword(catalog.KeywordTaunt) && !c.HasKeyword(catalog.KeywordStealth) {
			taunt = true
			break
		}
	}
	for _, c := range enemy.Battlefield {
		if !c.Alive() || c.HasKeyword(catalog.KeywordStealth) {
			continue
		}
		if taunt && !c.HasKeyword(catalog.KeywordTaunt) {
			continue
		}
		targets = append(targets, c)
	}
	return targets, !taunt
}

func (m *Match) applyAttack(player *Player, intent Intent) Result {
	if m.phases.Phase() != rules.PhaseMain {
		return rejected(ResultWrongPhase, "cannot attack during %s", m.phases.Phase())
	}
	if player != m.ActivePlayer() {
		return rejected(ResultNotYourTurn, "it is not %s's turn", player.Name)
	}

	// AttackerID "face" is the hero swinging the equipped weapon.
	if intent.AttackerID == TargetFace {
		return m.applyHeroAttack(player, intent)
	}

	attacker := player.FindCreature(intent.AttackerID)
	if attacker == nil {
		return rejected(ResultInvalidAttacker, "no creature %s on battlefield", intent.AttackerID)
	}
	if !attacker.CanAttack() {
		return rejected(ResultInvalidAttacker, "creature %s cannot attack", intent.AttackerID)
	}

	enemy := m.Opponent(player)
	targets, faceAllowed := LegalAttackTargets(enemy)

	if intent.TargetID == TargetFace {
		if !faceAllowed {
			return rejected(ResultTauntRequired, "a Taunt creature must be attacked first")
		}
		return m.attackFace(player, attacker, enemy)
	}

	var defender *Creature
	for _, t := range targets {
		if t.InstanceID == intent.TargetID {
			defender = t
			break
		}
	}
	if defender == nil {
		if enemy.FindCreature(intent.TargetID) != nil {
			return rejected(ResultTauntRequired, "a Taunt creature must be attacked first")
		}
		return rejected(ResultInvalidTarget, "no legal target %s", intent.TargetID)
	}
	return m.attackCreature(player, attacker, enemy, defender)
}

// applyHeroAttack resolves the hero swinging the equipped weapon. One swing
// per turn; the weapon loses a point of durability and is destroyed at zero.
// Attacking a creature exposes the hero to the defender's attack in return.
func (m *Match) applyHeroAttack(player *Player, intent Intent) Result {
	if player.Weapon == nil || player.Weapon.Durability <= 0 {
		return rejected(ResultInvalidAttacker, "no weapon equipped")
	}
	if player.HeroAttacked {
		return rejected(ResultInvalidAttacker, "hero already attacked this turn")
	}

	enemy := m.Opponent(player)
	targets, faceAllowed := LegalAttackTargets(enemy)

	var defender *Creature
	if intent.TargetID != TargetFace {
		for _, t := range targets {
			if t.InstanceID == intent.TargetID {
				defender = t
				break
			}
		}
		if defender == nil {
			if enemy.FindCreature(intent.TargetID) != nil {
				return rejected(ResultTauntRequired, "a Taunt creature must be attacked first")
			}
			return rejected(ResultInvalidTarget, "no legal target %s", intent.TargetID)
		}
	} else if !faceAllowed {
		return rejected(ResultTauntRequired, "a Taunt creature must be attacked first")
	}

	player.HeroAttacked = true
	weapon := player.Weapon
	weapon.Durability--

	var dealt int
	target := TargetFace
	if defender == nil {
		dealt = enemy.TakeDamage(weapon.Attack)
	} else {
		dealt = defender.TakeDamage(weapon.Attack)
		player.TakeDamage(defender.Attack)
		target = defender.InstanceID
	}

	m.appendEvent(rules.EventAttackResolved, player.ID, map[string]any{
		"attacker_id": TargetFace,
		"target":      target,
		"damage":      dealt,
	})

	if weapon.Durability <= 0 {
		player.Weapon = nil
	}

	m.sweepDead()
	m.checkWinCondition()
	return accepted()
}

func (m *Match) attackFace(player *Player, attacker *Creature, enemy *Player) Result {
	if err := attacker.MarkAttacked(); err != nil {
		return rejected(ResultInvalidAttacker, "%v", err)
	}

	applied := enemy.TakeDamage(attacker.Attack)
	attacker.DamageDealtThisTurn += applied
	if attacker.HasKeyword(catalog.KeywordLifesteal) {
		player.Heal(applied)
	}

	m.appendEvent(rules.EventAttackResolved, player.ID, map[string]any{
		"attacker_id": attacker.InstanceID,
		"target":      TargetFace,
		"damage":      applied,
	})

	m.checkWinCondition()
	return accepted()
}

func (m *Match) attackCreature(player *Player, attacker *Creature, enemy *Player, defender *Creature) Result {
	if err := attacker.MarkAttacked(); err != nil {
		return rejected(ResultInvalidAttacker, "%v", err)
	}

	dealt := defender.TakeDamage(attacker.Attack)
	taken := attacker.TakeDamage(defender.Attack)
	attacker.DamageDealtThisTurn += dealt

	// Poisonous destroys any creature it damages, shields aside.
	if dealt > 0 && attacker.HasKeyword(catalog.KeywordPoisonous) {
		defender.Health = 0
	}
	if taken > 0 && defender.HasKeyword(catalog.KeywordPoisonous) {
		attacker.Health = 0
	}

	if attacker.HasKeyword(catalog.KeywordLifesteal) {
		player.Heal(dealt)
	}
	if defender.HasKeyword(catalog.KeywordLifesteal) {
		enemy.Heal(taken)
	}

	m.appendEvent(rules.EventAttackResolved, player.ID, map[string]any{
		"attacker_id": attacker.InstanceID,
		"target":      defender.InstanceID,
		"damage":      dealt,
		"return":      taken,
	})

	m.sweepDead()
	m.checkWinCondition()
	return accepted()
}

// sweepDead removes destroyed creatures from both battlefields, resolving
// their on-death abilities. Deaths caused by those abilities are swept in
// the same pass.
func (m *Match) sweepDead() {
	for swept := true; swept; {
		swept = false
		for _, p := range m.players {
			for _, c := range p.Battlefield {
				if c.Alive() {
					continue
				}
				p.RemoveCreature(c.InstanceID)
				m.appendEvent(rules.EventCreatureDestroyed, p.ID, map[string]any{
					"card_id":     c.Card.ID,
					"instance_id": c.InstanceID,
				})
				if !c.Silenced {
					m.resolveAbilities(p, c.Card, catalog.TriggerOnDeath)
				}
				swept = true
				break
			}
		}
	}
}

// checkWinCondition ends the game when a player's health has hit zero. The
// surviving player wins with reason "opponent defeated". Returns true if the
// match ended.
func (m *Match) checkWinCondition() bool {
	if m.phases.Terminal() {
		return true
	}
	for i, p := range m.players {
		if p.Health <= 0 {
			m.endGame(m.players[1-i], WinReasonDefeated)
			return true
		}
	}
	return false
}

func (m *Match) endGame(winner *Player, reason string) {
	if m.phases.Terminal() {
		return
	}
	m.winnerID = winner.ID
	m.winReason = reason
	m.phases.EndGame()

	m.appendEvent(rules.EventGameEnded, winner.ID, map[string]any{
		"winner_id": winner.ID,
		"reason":    reason,
	})

	if m.logger != nil {
		m.logger.Info("match ended",
			zap.String("match_id", m.ID),
			zap.String("winner", winner.Name),
			zap.String("reason", reason),
			zap.Int("turns", m.phases.TurnNumber()),
		)
	}
}

func (m *Match) appendEvent(eventType rules.EventType, playerID string, payload map[string]any) {
	event := rules.NewEvent(eventType, playerID, payload)
	m.history = append(m.history, event)
	if m.bus != nil {
		m.bus.Publish(event)
	}
	if m.logger != nil {
		m.logger.Debug("match event",
			zap.String("match_id", m.ID),
			zap.String("event", string(eventType)),
			zap.String("player_id", playerID),
		)
	}
}
