package ai

import (
	"github.com/duelforge/duel-server-go/internal/game"
)

// candidateKind classifies a generated move for strategy biasing.
type candidateKind int

const (
	kindPlayCard candidateKind = iota
	kindAttackFace
	kindAttackCreature
	kindEndTurn
)

// candidate is a legal intent with its estimated value. Generation order is
// deterministic given the snapshot, which keeps seeded runs reproducible.
type candidate struct {
	intent     game.Intent
	kind       candidateKind
	score      float64
	lethal     bool
	faceDamage int
	rationale  string
}

// legalTargets mirrors the match's attack-target rule over a view: Stealth
// creatures cannot be targeted, and a living Taunt creature restricts attacks
// to Taunt creatures and blocks the face.
func legalTargets(enemy game.PlayerView) (targets []game.CreatureView, faceAllowed bool) {
	taunt := false
	for _, c := range enemy.Battlefield {
		if c.Health > 0 && c.Taunt && !c.Stealth {
			taunt = true
			break
		}
	}
	for _, c := range enemy.Battlefield {
		if c.Health <= 0 || c.Stealth {
			continue
		}
		if taunt && !c.Taunt {
			continue
		}
		targets = append(targets, c)
	}
	return targets, !taunt
}

// generate enumerates every currently legal intent for the active player,
// always including an end-turn fallback at baseline value zero.
func (e *Engine) generate(view game.MatchView) []candidate {
	self := view.Players[view.ActiveIndex]
	enemy := view.Players[1-view.ActiveIndex]
	targets, faceAllowed := legalTargets(enemy)

	var out []candidate

	for _, card := range self.Hand {
		if card.Cost > self.Mana {
			continue
		}
		switch card.Type {
		case "CREATURE":
			if len(self.Battlefield) >= game.MaxBattlefield {
				continue
			}
			out = append(out, e.scorePlayCreature(self, card))
		case "SPELL":
			// Spell targeting returns no valid targets, so every spell
			// generates a single untargeted intent.
			out = append(out, e.scorePlaySpell(self, card))
		case "WEAPON":
			out = append(out, e.scorePlayWeapon(self, card))
		}
	}

	for _, creature := range self.Battlefield {
		if !creature.CanAttack {
			continue
		}
		if faceAllowed {
			out = append(out, e.scoreFaceAttack(self, creature.InstanceID, creature.Attack, enemy))
		}
		for _, target := range targets {
			out = append(out, e.scoreTrade(self, creature, target))
		}
	}

	if self.Weapon != nil && self.Weapon.Durability > 0 && !self.HeroAttacked {
		if faceAllowed {
			out = append(out, e.scoreFaceAttack(self, game.TargetFace, self.Weapon.Attack, enemy))
		}
		for _, target := range targets {
			out = append(out, e.scoreHeroTrade(self, target))
		}
	}

	out = append(out, candidate{
		intent:    game.Intent{Kind: game.IntentEndTurn, PlayerID: self.ID},
		kind:      kindEndTurn,
		score:     0,
		rationale: "nothing better to do",
	})
	return out
}
