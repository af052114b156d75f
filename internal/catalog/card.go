package catalog

import (
	"fmt"
)

// CardType identifies which variant of card a catalog entry is.
type CardType int

const (
	TypeCreature CardType = iota
	TypeSpell
	TypeWeapon
)

var cardTypeNames = map[CardType]string{
	TypeCreature: "CREATURE",
	TypeSpell:    "SPELL",
	TypeWeapon:   "WEAPON",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", int(t))
}

// Rarity determines the per-deck copy limit for a card.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "COMMON",
	RarityRare:      "RARE",
	RarityEpic:      "EPIC",
	RarityLegendary: "LEGENDARY",
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RARITY_%d", int(r))
}

// Keyword is a combat-relevant tag carried by a card and inherited by the
// creature instances summoned from it.
type Keyword int

const (
	KeywordTaunt Keyword = iota
	KeywordCharge
	KeywordDivineShield
	KeywordStealth
	KeywordLifesteal
	KeywordWindfury
	KeywordSpellDamage
	KeywordPoisonous
)

var keywordNames = map[Keyword]string{
	KeywordTaunt:        "TAUNT",
	KeywordCharge:       "CHARGE",
	KeywordDivineShield: "DIVINE_SHIELD",
	KeywordStealth:      "STEALTH",
	KeywordLifesteal:    "LIFESTEAL",
	KeywordWindfury:     "WINDFURY",
	KeywordSpellDamage:  "SPELL_DAMAGE",
	KeywordPoisonous:    "POISONOUS",
}

func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KEYWORD_%d", int(k))
}

// Card is an immutable catalog entry. Cards are created once at catalog load
// and shared by reference across decks and creature instances; nothing in the
// engine mutates a Card after registration.
type Card struct {
	ID         string
	Name       string
	Cost       int
	Type       CardType
	Rarity     Rarity
	Attack     int // creatures and weapons
	Health     int // creatures only
	Durability int // weapons only
	Keywords   []Keyword
	Abilities  []Ability
}

// HasKeyword reports whether the card carries the given keyword.
func (c *Card) HasKeyword(k Keyword) bool {
	for _, have := range c.Keywords {
		if have == k {
			return true
		}
	}
	return false
}

// Validate checks the per-type stat invariants of a card definition.
// All problems are returned as a list; an empty list means the card is legal.
func Validate(c *Card) []error {
	var errs []error

	if c.ID == "" {
		errs = append(errs, fmt.Errorf("card has no id"))
	}
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("card %s has no name", c.ID))
	}
	if c.Cost < 0 {
		errs = append(errs, fmt.Errorf("card %s: mana cost must be non-negative, got %d", c.ID, c.Cost))
	}

	switch c.Type {
	case TypeCreature:
		if c.Attack < 0 {
			errs = append(errs, fmt.Errorf("card %s: creature attack must be >= 0, got %d", c.ID, c.Attack))
		}
		if c.Health <= 0 {
			errs = append(errs, fmt.Errorf("card %s: creature health must be > 0, got %d", c.ID, c.Health))
		}
		if c.Durability != 0 {
			errs = append(errs, fmt.Errorf("card %s: creature must not have durability", c.ID))
		}
	case TypeSpell:
		if c.Attack != 0 || c.Health != 0 || c.Durability != 0 {
			errs = append(errs, fmt.Errorf("card %s: spell must not carry combat stats", c.ID))
		}
	case TypeWeapon:
		if c.Attack <= 0 {
			errs = append(errs, fmt.Errorf("card %s: weapon attack must be > 0, got %d", c.ID, c.Attack))
		}
		if c.Durability <= 0 {
			errs = append(errs, fmt.Errorf("card %s: weapon durability must be > 0, got %d", c.ID, c.Durability))
		}
		if c.Health != 0 {
			errs = append(errs, fmt.Errorf("card %s: weapon must not have health", c.ID))
		}
	default:
		errs = append(errs, fmt.Errorf("card %s: unknown card type %d", c.ID, int(c.Type)))
	}

	return errs
}
