// ABOUTME: Top-level stateful driver exposing construct/step/stop over a crafting synth
// ABOUTME: Wraps internal/ga, translating its events into the Progress/Success/Error output schema

package xivcraft

import (
	"context"
	"fmt"

	"xivcraft/internal/config"
	"xivcraft/internal/ga"
	"xivcraft/internal/genome"
	"xivcraft/internal/presets"
	"xivcraft/internal/progress"
	"xivcraft/internal/sim"
)

// Synth re-exports the simulator's synthesis description so callers don't
// need to import internal/sim directly to construct a Driver.
type Synth = sim.Synth

// LoadPreset resolves an embedded recipe/crafter fixture by name.
func LoadPreset(name string) (*Synth, error) {
	return presets.Load(name)
}

// Event is the tagged output union from §6: exactly one of Progress,
// Success, or Error is non-nil.
type Event struct {
	Progress *ProgressEvent
	Success  *SuccessEvent
	Error    *ErrorEvent
}

// ProgressEvent reports one generation's best-so-far sequence and state.
type ProgressEvent struct {
	GenerationsCompleted int
	MaxGenerations       int
	BestSequence         []string
	State                progress.Snapshot
}

// SuccessEvent reports the final outcome of a completed or early-stopped run.
type SuccessEvent struct {
	BestSequence []string
	ExecutionLog string
	ElapsedTime  float64 // seconds
}

// ErrorEvent carries a descriptive failure message.
type ErrorEvent struct {
	Message string
}

// Driver is the single stateful entry point named in §6: construct from a
// synth, step one generation at a time, optionally stop early.
type Driver struct {
	synth  *Synth
	cfg    config.SolverConfig
	runID  string
	engine *ga.Driver
}

// Construct builds a Driver for synth using cfg's solver parameters. seed
// makes the run reproducible.
func Construct(synth *Synth, cfg config.SolverConfig, seed int64) *Driver {
	return &Driver{
		synth:  synth,
		cfg:    cfg,
		runID:  progress.RunID(),
		engine: ga.New(synth, cfg, seed),
	}
}

// Step advances the search by one generation and reports a Progress or
// Success event (the latter once the generation limit or a stagnation
// cutoff is reached).
func (d *Driver) Step(ctx context.Context) Event {
	event := d.engine.Step(ctx)

	switch {
	case event.Err != nil:
		return Event{Error: &ErrorEvent{Message: event.Err.Error()}}
	case event.Final != nil:
		return Event{Success: d.toSuccess(event.Final)}
	default:
		return Event{Progress: &ProgressEvent{
			GenerationsCompleted: event.Intermediate.Generation,
			MaxGenerations:       d.cfg.Generations,
			BestSequence:         sequenceNames(d.synth, event.Intermediate.Best),
			State:                progress.FromState(event.Intermediate.FinalState),
		}}
	}
}

// Stop returns the current best genome as a Success event without
// running further generations.
func (d *Driver) Stop() Event {
	final := d.engine.Stop()
	return Event{Success: d.toSuccess(&final)}
}

func (d *Driver) toSuccess(final *ga.FinalResult) *SuccessEvent {
	return &SuccessEvent{
		BestSequence: sequenceNames(d.synth, final.Best),
		ExecutionLog: fmt.Sprintf("run %s: fitness %d, stop reason %v", d.runID, final.Fitness, final.Reason),
	}
}

func sequenceNames(synth *Synth, g genome.Genome) []string {
	actions := g.Actions(synth)
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}
