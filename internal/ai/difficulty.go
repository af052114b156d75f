package ai

import (
	"fmt"
	"strings"
	"time"
)

// Level is the named difficulty of an AI opponent.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
	LevelExpert
)

var levelNames = map[Level]string{
	LevelEasy:   "EASY",
	LevelMedium: "MEDIUM",
	LevelHard:   "HARD",
	LevelExpert: "EXPERT",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL_%d", int(l))
}

// ParseLevel maps a case-insensitive difficulty name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return LevelEasy, nil
	case "MEDIUM":
		return LevelMedium, nil
	case "HARD":
		return LevelHard, nil
	case "EXPERT":
		return LevelExpert, nil
	default:
		return LevelEasy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Strategy biases the pick among top-scoring candidates.
type Strategy int

const (
	StrategyAggressive Strategy = iota
	StrategyTempo
	StrategyControl
	StrategyDefensive
)

var strategyNames = map[Strategy]string{
	StrategyAggressive: "AGGRESSIVE",
	StrategyTempo:      "TEMPO",
	StrategyControl:    "CONTROL",
	StrategyDefensive:  "DEFENSIVE",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STRATEGY_%d", int(s))
}

// DifficultyProfile configures the decision engine for one difficulty level.
// ThinkingTime is UX pacing only and never affects legality or scoring.
// LookAheadDepth is reserved for a future multi-ply search; current scoring
// is single-ply and does not consume it.
type DifficultyProfile struct {
	Level          Level
	ThinkingTime   time.Duration
	Strategy       Strategy
	MistakeChance  float64
	LookAheadDepth int
}

// ProfileFor returns the built-in profile for a difficulty level.
func ProfileFor(level Level) DifficultyProfile {
	switch level {
	case LevelMedium:
		return DifficultyProfile{Level: level, ThinkingTime: time.Second, Strategy: StrategyTempo, MistakeChance: 0.15, LookAheadDepth: 2}
	case LevelHard:
		return DifficultyProfile{Level: level, ThinkingTime: 1500 * time.Millisecond, Strategy: StrategyControl, MistakeChance: 0.05, LookAheadDepth: 3}
	case LevelExpert:
		return DifficultyProfile{Level: level, ThinkingTime: 2 * time.Second, Strategy: StrategyControl, MistakeChance: 0, LookAheadDepth: 4}
	default:
		return DifficultyProfile{Level: LevelEasy, ThinkingTime: 500 * time.Millisecond, Strategy: StrategyAggressive, MistakeChance: 0.30, LookAheadDepth: 1}
	}
}

// Validate checks profile ranges.
func (p DifficultyProfile) Validate() error {
	if p.MistakeChance < 0 || p.MistakeChance > 1 {
		return fmt.Errorf("mistake chance %f out of range [0,1]", p.MistakeChance)
	}
	if p.ThinkingTime < 0 {
		return fmt.Errorf("thinking time must be non-negative")
	}
	if p.LookAheadDepth < 1 {
		return fmt.Errorf("look-ahead depth must be at least 1")
	}
	return nil
}
