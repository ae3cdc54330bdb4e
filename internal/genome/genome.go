// ABOUTME: Length-aware initial genome construction from a recipe's rough step count
// ABOUTME: Grounded on the reference solver's CraftActionGenomeBuilder

package genome

import (
	"math/rand"

	"xivcraft/internal/action"
	"xivcraft/internal/sim"
)

// Genome is an ordered sequence of small unsigned integers indexing a
// crafter's available action list. 0 is the end-of-sequence sentinel;
// 1..=N index into Synth.Crafter.Actions.
type Genome []uint8

// Builder estimates sensible genome lengths from a Synth's recipe and
// produces uniformly-random initial genomes within that range.
type Builder struct {
	MinLength int
	MaxLength int
	numValues int // number of available action indices, excludes the 0 sentinel
}

// NewBuilder computes min/max genome length from the recipe's rough
// progress/quality step counts, per §4.3.
func NewBuilder(synth *sim.Synth) *Builder {
	baseProgress := progressPerHit(synth)
	baseQuality := qualityPerHit(synth)

	progSteps := divOrOne(synth.Recipe.Difficulty, baseProgress)
	qualSteps := divOrOne(synth.Recipe.MaxQuality, baseQuality)
	stepRange := progSteps + qualSteps

	minLength := stepRange - 5
	if minLength < 2 {
		minLength = 2
	}
	maxLength := stepRange + 20

	return &Builder{
		MinLength: minLength,
		MaxLength: maxLength,
		numValues: len(synth.Crafter.Actions),
	}
}

func divOrOne(a, b int) int {
	if b <= 0 {
		return a
	}
	return a / b
}

// progressPerHit and qualityPerHit approximate a single action's
// contribution, matching the reference builder's use of the synth's base
// progress/quality increase (craftsmanship/control driven, before any
// action-specific multiplier).
func progressPerHit(synth *sim.Synth) int {
	base := float64(synth.Crafter.Craftsmanship)*10.0/synth.Recipe.ProgressDivider + 2.0
	if base < 1 {
		return 1
	}
	return int(base)
}

func qualityPerHit(synth *sim.Synth) int {
	base := float64(synth.Crafter.Control)*10.0/synth.Recipe.QualityDivider + 35.0
	if base < 1 {
		return 1
	}
	return int(base)
}

// Build produces one random genome with a uniformly-random length in
// [MinLength, MaxLength] and uniformly-random entries in [0, numValues].
func (b *Builder) Build(rng *rand.Rand) Genome {
	length := b.MinLength
	if b.MaxLength > b.MinLength {
		length += rng.Intn(b.MaxLength - b.MinLength + 1)
	}

	g := make(Genome, length)
	for i := range g {
		g[i] = uint8(rng.Intn(b.numValues + 1))
	}
	return g
}

// BuildPopulation produces n independent random genomes.
func (b *Builder) BuildPopulation(rng *rand.Rand, n int) []Genome {
	pop := make([]Genome, n)
	for i := range pop {
		pop[i] = b.Build(rng)
	}
	return pop
}

// Actions resolves a genome to the concrete action sequence it encodes,
// stopping at the first 0 sentinel or the first out-of-range index (the
// latter happens when a crafter's action list is shorter than the
// genome's value domain, e.g. an empty action list decodes to no
// actions at all).
func (g Genome) Actions(synth *sim.Synth) []action.Action {
	out := make([]action.Action, 0, len(g))
	for _, v := range g {
		if v == 0 {
			break
		}
		idx := int(v) - 1
		if idx < 0 || idx >= len(synth.Crafter.Actions) {
			break
		}
		out = append(out, synth.Crafter.Actions[idx])
	}
	return out
}
