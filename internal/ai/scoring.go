package ai

import (
	"fmt"

	"github.com/duelforge/duel-server-go/internal/game"
)

// Scoring constants. Values are heuristic board-value units (one point per
// point of attack or health).
const (
	spellBaseline      = 3.0
	targetedSpellBonus = 2.0
	keywordBonus       = 2.0
	lethalScore        = 1000.0
)

func hasKeyword(keywords []string, name string) bool {
	for _, k := range keywords {
		if k == name {
			return true
		}
	}
	return false
}

// scorePlayCreature values a creature play as board value gained minus cost,
// with flat bonuses for Taunt and Charge.
func (e *Engine) scorePlayCreature(self game.PlayerView, card game.CardView) candidate {
	score := float64(card.Attack + card.Health - card.Cost)
	if hasKeyword(card.Keywords, "TAUNT") {
		score += keywordBonus
	}
	if hasKeyword(card.Keywords, "CHARGE") {
		score += keywordBonus
	}
	return candidate{
		intent:    game.Intent{Kind: game.IntentPlayCard, PlayerID: self.ID, CardID: card.ID},
		kind:      kindPlayCard,
		score:     score,
		rationale: fmt.Sprintf("play %s for board value %.0f", card.Name, score),
	}
}

// scorePlaySpell values a spell play as a flat baseline minus cost, plus a
// bonus when targeted (never, while targeting is unimplemented).
func (e *Engine) scorePlaySpell(self game.PlayerView, card game.CardView) candidate {
	score := spellBaseline - float64(card.Cost)
	intent := game.Intent{Kind: game.IntentPlayCard, PlayerID: self.ID, CardID: card.ID}
	if intent.TargetID != "" {
		score += targetedSpellBonus
	}
	return candidate{
		intent:    intent,
		kind:      kindPlayCard,
		score:     score,
		rationale: fmt.Sprintf("cast %s", card.Name),
	}
}

// scorePlayWeapon values a weapon by its total swing damage minus cost.
func (e *Engine) scorePlayWeapon(self game.PlayerView, card game.CardView) candidate {
	score := float64(card.Attack*card.Durability - card.Cost)
	return candidate{
		intent:    game.Intent{Kind: game.IntentPlayCard, PlayerID: self.ID, CardID: card.ID},
		kind:      kindPlayCard,
		score:     score,
		rationale: fmt.Sprintf("equip %s", card.Name),
	}
}

// scoreFaceAttack values face damage at double its amount, or a saturating
// high constant when it is lethal. attackerID may be the hero ("face").
func (e *Engine) scoreFaceAttack(self game.PlayerView, attackerID string, damage int, enemy game.PlayerView) candidate {
	lethal := damage >= enemy.Health
	score := float64(2 * damage)
	rationale := fmt.Sprintf("hit face for %d", damage)
	if lethal {
		score = lethalScore
		rationale = fmt.Sprintf("lethal: %d damage against %d health", damage, enemy.Health)
	}
	return candidate{
		intent: game.Intent{
			Kind:       game.IntentAttack,
			PlayerID:   self.ID,
			AttackerID: attackerID,
			TargetID:   game.TargetFace,
		},
		kind:       kindAttackFace,
		score:      score,
		lethal:     lethal,
		faceDamage: damage,
		rationale:  rationale,
	}
}

// creatureValue is the board value of a creature for trade math.
func creatureValue(c game.CreatureView) float64 {
	return float64(c.Attack + c.Health)
}

// scoreTrade values a creature-vs-creature attack as the value of the
// defender if it dies minus the value of the attacker if the trade loses it.
// Divine Shield on either side absorbs the hit and prevents the kill.
func (e *Engine) scoreTrade(self game.PlayerView, attacker, defender game.CreatureView) candidate {
	defenderDies := attacker.Attack >= defender.Health &&
		!hasKeyword(defender.Keywords, "DIVINE_SHIELD")
	attackerDies := defender.Attack >= attacker.Health &&
		!hasKeyword(attacker.Keywords, "DIVINE_SHIELD")
	if hasKeyword(attacker.Keywords, "POISONOUS") && !hasKeyword(defender.Keywords, "DIVINE_SHIELD") {
		defenderDies = true
	}
	if hasKeyword(defender.Keywords, "POISONOUS") && !hasKeyword(attacker.Keywords, "DIVINE_SHIELD") {
		attackerDies = true
	}

	score := 0.0
	if defenderDies {
		score += creatureValue(defender)
	}
	if attackerDies {
		score -= creatureValue(attacker)
	}
	return candidate{
		intent: game.Intent{
			Kind:       game.IntentAttack,
			PlayerID:   self.ID,
			AttackerID: attacker.InstanceID,
			TargetID:   defender.InstanceID,
		},
		kind:      kindAttackCreature,
		score:     score,
		rationale: fmt.Sprintf("trade %s into %s", attacker.Name, defender.Name),
	}
}

// scoreHeroTrade values the hero swinging the weapon into a creature: the
// defender's value if it dies minus the hero damage taken in return.
func (e *Engine) scoreHeroTrade(self game.PlayerView, defender game.CreatureView) candidate {
	score := -float64(defender.Attack)
	if self.Weapon.Attack >= defender.Health && !hasKeyword(defender.Keywords, "DIVINE_SHIELD") {
		score += creatureValue(defender)
	}
	return candidate{
		intent: game.Intent{
			Kind:       game.IntentAttack,
			PlayerID:   self.ID,
			AttackerID: game.TargetFace,
			TargetID:   defender.InstanceID,
		},
		kind:      kindAttackCreature,
		score:     score,
		rationale: fmt.Sprintf("weapon swing into %s", defender.Name),
	}
}
