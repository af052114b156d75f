package catalog

import "fmt"

// AbilityEffect is the closed set of effects a card ability can have.
type AbilityEffect int

const (
	EffectDealDamage AbilityEffect = iota
	EffectDrawCards
	EffectHeal
	EffectBuffAttack
	EffectBuffHealth
)

var abilityEffectNames = map[AbilityEffect]string{
	EffectDealDamage: "DEAL_DAMAGE",
	EffectDrawCards:  "DRAW_CARDS",
	EffectHeal:       "HEAL",
	EffectBuffAttack: "BUFF_ATTACK",
	EffectBuffHealth: "BUFF_HEALTH",
}

func (e AbilityEffect) String() string {
	if name, ok := abilityEffectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EFFECT_%d", int(e))
}

// AbilityTrigger determines when an ability resolves.
type AbilityTrigger int

const (
	// TriggerOnPlay resolves when the card is played from hand. For spells
	// this is the spell's entire effect; for creatures it is a battlecry.
	TriggerOnPlay AbilityTrigger = iota
	// TriggerOnDeath resolves when the creature summoned from the card is
	// destroyed (a deathrattle). Never fires for spells or weapons.
	TriggerOnDeath
)

var abilityTriggerNames = map[AbilityTrigger]string{
	TriggerOnPlay:  "ON_PLAY",
	TriggerOnDeath: "ON_DEATH",
}

func (t AbilityTrigger) String() string {
	if name, ok := abilityTriggerNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TRIGGER_%d", int(t))
}

// Ability is a single effect definition on a card. Amount is the magnitude
// (damage dealt, cards drawn, health restored, stat gained).
type Ability struct {
	Effect  AbilityEffect
	Trigger AbilityTrigger
	Amount  int
}
