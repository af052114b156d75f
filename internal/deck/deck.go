// Package deck defines deck construction rules and draw-pile creation.
// A Deck is a build-time definition; play never mutates it. The randomized
// draw pile handed to a match is produced by Pile from an injected random
// source so shuffles are reproducible under a fixed seed.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/duelforge/duel-server-go/internal/catalog"
)

// Size is the required total card count of a legal deck.
const Size = 30

// Copy limits by rarity.
const (
	MaxCopies          = 2
	MaxCopiesLegendary = 1
)

// Entry pairs a catalog card with how many copies the deck runs.
type Entry struct {
	Card  *catalog.Card
	Count int
}

// Deck is an ordered collection of card entries with a hero class tag.
type Deck struct {
	Name      string
	HeroClass string
	Entries   []Entry
}

// Validate checks deck-construction rules and returns every violation found.
// It is a pure function: an invalid deck is reported, never rejected by panic.
func (d *Deck) Validate() []error {
	var errs []error

	total := 0
	seen := make(map[string]int)
	for _, e := range d.Entries {
		if e.Card == nil {
			errs = append(errs, fmt.Errorf("deck %s: entry with nil card", d.Name))
			continue
		}
		if e.Count <= 0 {
			errs = append(errs, fmt.Errorf("deck %s: card %s has non-positive count %d", d.Name, e.Card.ID, e.Count))
			continue
		}
		total += e.Count
		seen[e.Card.ID] += e.Count

		if cardErrs := catalog.Validate(e.Card); len(cardErrs) > 0 {
			for _, cerr := range cardErrs {
				errs = append(errs, fmt.Errorf("deck %s: %w", d.Name, cerr))
			}
		}

		limit := MaxCopies
		if e.Card.Rarity == catalog.RarityLegendary {
			limit = MaxCopiesLegendary
		}
		if seen[e.Card.ID] > limit {
			errs = append(errs, fmt.Errorf("deck %s: card %s exceeds copy limit of %d", d.Name, e.Card.ID, limit))
		}
	}

	if total != Size {
		errs = append(errs, fmt.Errorf("deck %s: must contain exactly %d cards, got %d", d.Name, Size, total))
	}

	return errs
}

// Pile expands the deck into a shuffled draw pile. The deck itself is left
// untouched; each call produces a fresh slice.
func (d *Deck) Pile(rng *rand.Rand) []*catalog.Card {
	pile := make([]*catalog.Card, 0, Size)
	for _, e := range d.Entries {
		for i := 0; i < e.Count; i++ {
			pile = append(pile, e.Card)
		}
	}
	rng.Shuffle(len(pile), func(i, j int) {
		pile[i], pile[j] = pile[j], pile[i]
	})
	return pile
}

// FromCatalog builds a deck by card id. Counts follow the copy limits so the
// resulting deck validates as long as the ids exist and the total reaches Size.
func FromCatalog(c *catalog.Catalog, name, heroClass string, counts map[string]int) (*Deck, error) {
	d := &Deck{Name: name, HeroClass: heroClass}
	for _, card := range c.All() {
		count, ok := counts[card.ID]
		if !ok {
			continue
		}
		d.Entries = append(d.Entries, Entry{Card: card, Count: count})
	}
	for id := range counts {
		if _, ok := c.Get(id); !ok {
			return nil, fmt.Errorf("deck %s references unknown card %s", name, id)
		}
	}
	return d, nil
}
