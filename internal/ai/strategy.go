package ai

// closeMargin is how near a candidate's score must be to the top score to
// count as "close" for strategy preferences.
const closeMargin = 2.0

// applyStrategy biases the pick among the sorted candidates (best first).
// Returns the index of the preferred candidate; falls back to the top score
// when nothing matches the strategy's preference.
func applyStrategy(strategy Strategy, sorted []candidate) int {
	switch strategy {
	case StrategyAggressive:
		// Any lethal, then any face damage, beats the raw top score.
		best := -1
		for i, c := range sorted {
			if c.kind != kindAttackFace {
				continue
			}
			if c.lethal {
				return i
			}
			if best == -1 {
				best = i
			}
		}
		if best >= 0 {
			return best
		}
	case StrategyControl, StrategyTempo:
		// Prefer developing a card over attacking when scores are close.
		if sorted[0].kind == kindAttackFace || sorted[0].kind == kindAttackCreature {
			for i, c := range sorted {
				if c.kind == kindPlayCard && sorted[0].score-c.score <= closeMargin {
					return i
				}
			}
		}
	case StrategyDefensive:
		// Without lethal on the table, trade into creatures before going face.
		hasLethal := false
		for _, c := range sorted {
			if c.lethal {
				hasLethal = true
				break
			}
		}
		if !hasLethal && sorted[0].kind == kindAttackFace {
			for i, c := range sorted {
				if c.kind == kindAttackCreature && sorted[0].score-c.score <= closeMargin {
					return i
				}
			}
		}
	}
	return 0
}
