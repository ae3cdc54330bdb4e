// ABOUTME: Immutable synthesis description: crafter, recipe and solver parameters
// ABOUTME: Shared read-only across every state produced from it in a replay

package sim

import "xivcraft/internal/action"

// Crafter describes the player character attempting the synthesis.
type Crafter struct {
	Level          int
	Craftsmanship  int
	Control        int
	CP             int
	Specialist     bool
	Actions        []action.Action // the crafter's personal action list; genome indices are 1-based into this slice
}

// Recipe describes the item being crafted.
type Recipe struct {
	BaseLevel              int
	Level                  int
	Difficulty             int
	Durability             int
	StartQuality           int
	MaxQuality             int
	SuggestedCraftsmanship int
	SuggestedControl       int
	ProgressDivider        float64
	ProgressModifier       *int // percent, defaults to 100 when nil
	QualityDivider         float64
	QualityModifier        *int // percent, defaults to 100 when nil
	Stars                  bool
	SafetyMarginPercent    float64
}

// SolverVars carries the fitness-shaping flags the caller selects.
type SolverVars struct {
	SolveForCompletion        bool
	RemainderCPFitnessWeight  float64
	RemainderDurFitnessWeight float64
}

// Synth is the immutable input to one solver run. It is never mutated
// after construction; every State produced during a replay holds a
// non-owning reference back to it.
type Synth struct {
	Crafter             Crafter
	Recipe              Recipe
	SolverVars          SolverVars
	MaxTrickUses        int
	ReliabilityIndex    int // percent threshold
	MaxLength           int
	UseConditions       bool
}

func (s *Synth) progressModifierPercent() float64 {
	if s.Recipe.ProgressModifier == nil {
		return 100
	}
	return float64(*s.Recipe.ProgressModifier)
}

func (s *Synth) qualityModifierPercent() float64 {
	if s.Recipe.QualityModifier == nil {
		return 100
	}
	return float64(*s.Recipe.QualityModifier)
}

// baseProgressIncrease is the recipe/crafter-derived progress increment
// before any action-specific or buff multiplier is applied.
func (s *Synth) baseProgressIncrease(effCrafterLevel, craftsmanship int) int {
	baseValue := float64(craftsmanship)*10.0/s.Recipe.ProgressDivider + 2.0
	if effCrafterLevel <= s.Recipe.Level {
		return int(baseValue * s.progressModifierPercent() / 100.0)
	}
	return int(baseValue)
}

// baseQualityIncrease is the recipe/crafter-derived quality increment
// before any action-specific or buff multiplier is applied.
func (s *Synth) baseQualityIncrease(effCrafterLevel, control int) int {
	baseValue := float64(control)*10.0/s.Recipe.QualityDivider + 35.0
	if effCrafterLevel <= s.Recipe.BaseLevel {
		return int(baseValue * s.qualityModifierPercent() / 100.0)
	}
	return int(baseValue)
}
