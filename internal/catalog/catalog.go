package catalog

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Catalog is a constructed registry of card definitions. It is built once
// during assembly and passed into whatever needs card lookups; there is no
// package-level catalog.
type Catalog struct {
	logger *zap.Logger
	cards  map[string]*Card
}

// NewCatalog creates an empty catalog.
func NewCatalog(logger *zap.Logger) *Catalog {
	return &Catalog{
		logger: logger,
		cards:  make(map[string]*Card),
	}
}

// Register validates and adds a card definition. Registration fails if the
// card is invalid or its id is already taken.
func (c *Catalog) Register(card *Card) error {
	if errs := Validate(card); len(errs) > 0 {
		return fmt.Errorf("card %s failed validation: %v", card.ID, errs[0])
	}
	if _, exists := c.cards[card.ID]; exists {
		return fmt.Errorf("card id %s already registered", card.ID)
	}
	c.cards[card.ID] = card

	if c.logger != nil {
		c.logger.Debug("registered card",
			zap.String("card_id", card.ID),
			zap.String("name", card.Name),
			zap.String("type", card.Type.String()),
		)
	}
	return nil
}

// Get returns the card with the given id.
func (c *Catalog) Get(id string) (*Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// MustGet returns the card with the given id and panics if it is missing.
// Intended for built-in sets and tests where absence is a programming error.
func (c *Catalog) MustGet(id string) *Card {
	card, ok := c.cards[id]
	if !ok {
		panic(fmt.Sprintf("card %s not in catalog", id))
	}
	return card
}

// All returns every registered card sorted by id.
func (c *Catalog) All() []*Card {
	out := make([]*Card, 0, len(c.cards))
	for _, card := range c.cards {
		out = append(out, card)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Size returns the number of registered cards.
func (c *Catalog) Size() int {
	return len(c.cards)
}
