package game

import (
	"github.com/duelforge/duel-server-go/internal/catalog"
)

// MatchView is a read-only snapshot of a match. The AI decides on a view and
// never touches the live match; the driver renders from it. Nothing in a view
// aliases live match state.
type MatchView struct {
	MatchID     string        `json:"match_id"`
	Phase       string        `json:"phase"`
	Turn        int           `json:"turn"`
	ActiveIndex int           `json:"active_index"`
	Players     [2]PlayerView `json:"players"`
	WinnerID    string        `json:"winner_id,omitempty"`
	WinReason   string        `json:"win_reason,omitempty"`
}

// PlayerView is one player's visible state. Hand is populated only when the
// snapshot is taken for that player (or unredacted for the engine).
type PlayerView struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	AI           bool           `json:"ai"`
	Health       int            `json:"health"`
	MaxHealth    int            `json:"max_health"`
	Mana         int            `json:"mana"`
	ManaMax      int            `json:"mana_max"`
	Hand         []CardView     `json:"hand,omitempty"`
	HandCount    int            `json:"hand_count"`
	DeckCount    int            `json:"deck_count"`
	Fatigue      int            `json:"fatigue"`
	Battlefield  []CreatureView `json:"battlefield"`
	Weapon       *WeaponView    `json:"weapon,omitempty"`
	HeroAttacked bool           `json:"hero_attacked"`
}

// CardView describes a hand card.
type CardView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Cost       int      `json:"cost"`
	Type       string   `json:"type"`
	Attack     int      `json:"attack"`
	Health     int      `json:"health"`
	Durability int      `json:"durability"`
	Keywords   []string `json:"keywords,omitempty"`
}

// CreatureView describes a battlefield creature.
type CreatureView struct {
	InstanceID string   `json:"instance_id"`
	CardID     string   `json:"card_id"`
	Name       string   `json:"name"`
	Attack     int      `json:"attack"`
	Health     int      `json:"health"`
	MaxHealth  int      `json:"max_health"`
	State      string   `json:"state"`
	Frozen     bool     `json:"frozen"`
	Silenced   bool     `json:"silenced"`
	CanAttack  bool     `json:"can_attack"`
	Taunt      bool     `json:"taunt"`
	Stealth    bool     `json:"stealth"`
	Keywords   []string `json:"keywords,omitempty"`
}

// WeaponView describes an equipped weapon.
type WeaponView struct {
	CardID     string `json:"card_id"`
	Attack     int    `json:"attack"`
	Durability int    `json:"durability"`
}

// View returns an unredacted snapshot with both hands visible. Used by the
// engine, the AI (for its own side), and tests.
func (m *Match) View() MatchView {
	return m.view("")
}

// ViewFor returns a snapshot redacted for one player: the opponent's hand is
// reduced to a count.
func (m *Match) ViewFor(playerID string) MatchView {
	return m.view(playerID)
}

func (m *Match) view(forPlayer string) MatchView {
	v := MatchView{
		MatchID:     m.ID,
		Phase:       m.phases.Phase().String(),
		Turn:        m.phases.TurnNumber(),
		ActiveIndex: m.phases.ActiveIndex(),
		WinnerID:    m.winnerID,
		WinReason:   m.winReason,
	}
	for i, p := range m.players {
		withHand := forPlayer == "" || forPlayer == p.ID
		v.Players[i] = playerView(p, withHand)
	}
	return v
}

func playerView(p *Player, withHand bool) PlayerView {
	pv := PlayerView{
		ID:           p.ID,
		Name:         p.Name,
		AI:           p.AI,
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		Mana:         p.Mana,
		ManaMax:      p.ManaMax,
		HandCount:    len(p.Hand),
		DeckCount:    len(p.DrawPile),
		Fatigue:      p.Fatigue,
		HeroAttacked: p.HeroAttacked,
	}
	if withHand {
		pv.Hand = make([]CardView, 0, len(p.Hand))
		for _, c := range p.Hand {
			pv.Hand = append(pv.Hand, cardView(c))
		}
	}
	pv.Battlefield = make([]CreatureView, 0, len(p.Battlefield))
	for _, c := range p.Battlefield {
		pv.Battlefield = append(pv.Battlefield, creatureView(c))
	}
	if p.Weapon != nil {
		pv.Weapon = &WeaponView{
			CardID:     p.Weapon.Card.ID,
			Attack:     p.Weapon.Attack,
			Durability: p.Weapon.Durability,
		}
	}
	return pv
}

func cardView(c *catalog.Card) CardView {
	cv := CardView{
		ID:         c.ID,
		Name:       c.Name,
		Cost:       c.Cost,
		Type:       c.Type.String(),
		Attack:     c.Attack,
		Health:     c.Health,
		Durability: c.Durability,
	}
	for _, k := range c.Keywords {
		cv.Keywords = append(cv.Keywords, k.String())
	}
	return cv
}

func creatureView(c *Creature) CreatureView {
	cv := CreatureView{
		InstanceID: c.InstanceID,
		CardID:     c.Card.ID,
		Name:       c.Card.Name,
		Attack:     c.Attack,
		Health:     c.Health,
		MaxHealth:  c.MaxHealth,
		State:      c.State.String(),
		Frozen:     c.Frozen,
		Silenced:   c.Silenced,
		CanAttack:  c.CanAttack(),
		Taunt:      c.HasKeyword(catalog.KeywordTaunt),
		Stealth:    c.HasKeyword(catalog.KeywordStealth),
	}
	for _, k := range c.Keywords() {
		cv.Keywords = append(cv.Keywords, k.String())
	}
	return cv
}
