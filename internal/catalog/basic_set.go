package catalog

import "go.uber.org/zap"

// BasicSet builds a catalog preloaded with the built-in card set. The set is
// small but covers every card type, rarity, and keyword so full matches can
// run without external card data.
func BasicSet(logger *zap.Logger) (*Catalog, error) {
	c := NewCatalog(logger)
	for _, card := range basicCards {
		if err := c.Register(card); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var basicCards = []*Card{
	// Creatures
	{ID: "basic_squire", Name: "Stalwart Squire", Cost: 1, Type: TypeCreature, Rarity: RarityCommon, Attack: 1, Health: 2},
	{ID: "basic_wolf", Name: "Timber Wolf", Cost: 1, Type: TypeCreature, Rarity: RarityCommon, Attack: 2, Health: 1},
	{ID: "basic_footman", Name: "Shieldwall Footman", Cost: 2, Type: TypeCreature, Rarity: RarityCommon, Attack: 1, Health: 4,
		Keywords: []Keyword{KeywordTaunt}},
	{ID: "basic_raider", Name: "Reckless Raider", Cost: 2, Type: TypeCreature, Rarity: RarityCommon, Attack: 3, Health: 1,
		Keywords: []Keyword{KeywordCharge}},
	{ID: "basic_acolyte", Name: "Acolyte of Ash", Cost: 3, Type: TypeCreature, Rarity: RarityCommon, Attack: 2, Health: 3,
		Abilities: []Ability{{Effect: EffectDrawCards, Trigger: TriggerOnDeath, Amount: 1}}},
	{ID: "basic_harpy", Name: "Razorwind Harpy", Cost: 3, Type: TypeCreature, Rarity: RarityRare, Attack: 3, Health: 2,
		Keywords: []Keyword{KeywordWindfury}},
	{ID: "basic_shadowblade", Name: "Shadowblade", Cost: 3, Type: TypeCreature, Rarity: RarityRare, Attack: 4, Health: 2,
		Keywords: []Keyword{KeywordStealth}},
	{ID: "basic_protector", Name: "Silverhand Protector", Cost: 4, Type: TypeCreature, Rarity: RarityRare, Attack: 3, Health: 3,
		Keywords: []Keyword{KeywordDivineShield}},
	{ID: "basic_chaplain", Name: "Field Chaplain", Cost: 4, Type: TypeCreature, Rarity: RarityCommon, Attack: 3, Health: 4,
		Abilities: []Ability{{Effect: EffectHeal, Trigger: TriggerOnPlay, Amount: 3}}},
	{ID: "basic_venomfang", Name: "Venomfang Crawler", Cost: 4, Type: TypeCreature, Rarity: RarityEpic, Attack: 2, Health: 4,
		Keywords: []Keyword{KeywordPoisonous}},
	{ID: "basic_vampire", Name: "Duskmere Vampire", Cost: 5, Type: TypeCreature, Rarity: RarityEpic, Attack: 4, Health: 4,
		Keywords: []Keyword{KeywordLifesteal}},
	{ID: "basic_golem", Name: "Bulwark Golem", Cost: 5, Type: TypeCreature, Rarity: RarityCommon, Attack: 4, Health: 6,
		Keywords: []Keyword{KeywordTaunt}},
	{ID: "basic_pyromancer", Name: "Emberfall Pyromancer", Cost: 5, Type: TypeCreature, Rarity: RarityRare, Attack: 4, Health: 3,
		Keywords:  []Keyword{KeywordSpellDamage},
		Abilities: []Ability{{Effect: EffectDealDamage, Trigger: TriggerOnPlay, Amount: 2}}},
	{ID: "basic_warbringer", Name: "Warbringer Kael", Cost: 6, Type: TypeCreature, Rarity: RarityLegendary, Attack: 6, Health: 5,
		Keywords: []Keyword{KeywordCharge}},
	{ID: "basic_colossus", Name: "Colossus of the Vale", Cost: 7, Type: TypeCreature, Rarity: RarityEpic, Attack: 7, Health: 7},
	{ID: "basic_dragon", Name: "Vyrrin, Dawn Dragon", Cost: 8, Type: TypeCreature, Rarity: RarityLegendary, Attack: 8, Health: 8,
		Keywords: []Keyword{KeywordTaunt, KeywordDivineShield}},

	// Spells
	{ID: "basic_spark", Name: "Spark", Cost: 1, Type: TypeSpell, Rarity: RarityCommon,
		Abilities: []Ability{{Effect: EffectDealDamage, Trigger: TriggerOnPlay, Amount: 2}}},
	{ID: "basic_mend", Name: "Mending Light", Cost: 2, Type: TypeSpell, Rarity: RarityCommon,
		Abilities: []Ability{{Effect: EffectHeal, Trigger: TriggerOnPlay, Amount: 4}}},
	{ID: "basic_insight", Name: "Scholar's Insight", Cost: 3, Type: TypeSpell, Rarity: RarityRare,
		Abilities: []Ability{{Effect: EffectDrawCards, Trigger: TriggerOnPlay, Amount: 2}}},
	{ID: "basic_warcry", Name: "Rallying Warcry", Cost: 3, Type: TypeSpell, Rarity: RarityRare,
		Abilities: []Ability{{Effect: EffectBuffAttack, Trigger: TriggerOnPlay, Amount: 2}}},
	{ID: "basic_fortify", Name: "Fortify", Cost: 2, Type: TypeSpell, Rarity: RarityCommon,
		Abilities: []Ability{{Effect: EffectBuffHealth, Trigger: TriggerOnPlay, Amount: 3}}},
	{ID: "basic_firestorm", Name: "Firestorm", Cost: 6, Type: TypeSpell, Rarity: RarityEpic,
		Abilities: []Ability{{Effect: EffectDealDamage, Trigger: TriggerOnPlay, Amount: 5}}},

	// Weapons
	{ID: "basic_shortsword", Name: "Militia Shortsword", Cost: 2, Type: TypeWeapon, Rarity: RarityCommon, Attack: 2, Durability: 2},
	{ID: "basic_waraxe", Name: "Bloodforged Waraxe", Cost: 4, Type: TypeWeapon, Rarity: RarityRare, Attack: 3, Durability: 3},
}
