// ABOUTME: The pure state transition step(state, action) -> state'
// ABOUTME: Never fails; illegal actions degrade gracefully via wasted_actions penalties

package sim

import (
	"math"

	"xivcraft/internal/action"
)

// Step computes the next State from state after applying act. It does not
// mutate state; the caller's copy is left untouched.
func Step(state State, act action.Action) State {
	next := state
	next.Step = state.Step + 1
	prevAction := state.Action

	desc := action.Describe(act)

	pGood := pGoodForSynth(next.Synth)
	pExcellent := pExcellentForSynth(next.Synth)
	// p_good_or_excellent: the source's xiv_model.rs hardcodes this to 1.0
	// for its only SimulationCondition variant (MonteCarlo); it is not the
	// same quantity as the analytical pp_good/pp_excellent accumulator in
	// next.probs, which tracks a slowly-growing per-step mass instead.
	const pGoodOrExcellent = 1.0

	conditionMultiplier := 1.0
	if next.Synth.UseConditions {
		conditionMultiplier = next.probs.qualityMultiplier(pGood, next.Synth.MaxTrickUses)
	}

	// --- 3. Apply modifiers -------------------------------------------------
	successProbability := desc.SuccessProbability
	cpCost := desc.CPCost
	control := next.Synth.Crafter.Control

	if (act == action.FocusedSynthesis || act == action.FocusedTouch) && prevAction == action.Observe {
		successProbability = 1.0
	}
	successProbability = math.Min(successProbability, 1.0)

	// Combo handling.
	if act == action.AdvancedTouch && prevAction == action.StandardTouch && next.TouchComboStep == 1 {
		cpCost = 18
		next.TouchComboStep = 0
	}
	if act == action.StandardTouch && prevAction == action.BasicTouch {
		cpCost = 18
		next.WastedActions -= 0.05
		next.TouchComboStep = 1
	} else if act == action.StandardTouch && prevAction == action.StandardTouch {
		next.WastedActions += 0.1
	}

	if next.Synth.SolverVars.SolveForCompletion && (act == action.WasteNot || act == action.WasteNot2) {
		next.WastedActions += 50.0
	}

	// Progress multiplier.
	progressMultiplier := 1.0
	if desc.ProgressIncreaseMultiplier > 0 && next.CountDowns.Has(action.MuscleMemory) {
		progressMultiplier += 1.0
		next.CountDowns.Remove(action.MuscleMemory)
	}
	if next.CountDowns.Has(action.Veneration) {
		progressMultiplier += 0.5
	}
	if act == action.MuscleMemory && next.Step != 1 {
		next.WastedActions += 10
		progressMultiplier = 0
		cpCost = 0
	}

	// Quality multiplier (additive buffs, then the separately-multiplicative
	// Inner Quiet stack multiplier).
	qualityMultiplier := 1.0
	if next.CountDowns.Has(action.GreatStrides) {
		qualityMultiplier += 1.0
	}
	if next.CountDowns.Has(action.Innovation) {
		qualityMultiplier += 0.5
	}
	innerQuietMultiplier := 1.0
	iqStacks, hasIQ := next.CountUps.Get(action.InnerQuiet)
	if hasIQ {
		innerQuietMultiplier += 0.1 * float64(iqStacks)
	}

	// Byregot's Blessing: requires at least one Inner Quiet stack.
	if act == action.ByregotsBlessing {
		if hasIQ && iqStacks >= 1 {
			qualityMultiplier *= 1.0 + math.Min(0.2*float64(iqStacks), 3.0)
		} else {
			qualityMultiplier = 0
		}
	}

	effCrafterLevel := effectiveLevel(next.Synth.Crafter.Level)
	baseProgress := next.Synth.baseProgressIncrease(effCrafterLevel, next.Synth.Crafter.Craftsmanship)
	baseQuality := next.Synth.baseQualityIncrease(effCrafterLevel, control)
	next.BaseProgressGain = baseProgress
	next.BaseQualityGain = baseQuality

	qualityGain := int(float64(baseQuality) * desc.QualityIncreaseMultiplier * qualityMultiplier * innerQuietMultiplier)

	// Trained Finesse requires exactly 9 Inner Quiet stacks.
	if act == action.TrainedFinesse {
		if !hasIQ || iqStacks != 9 {
			next.WastedActions += 1.0
			qualityGain = 0
		}
	}

	// Durability cost, including the WasteNot family's halving.
	durabilityCost := float64(desc.DurabilityCost)
	wasteNotActive := next.CountDowns.Has(action.WasteNot) || next.CountDowns.Has(action.WasteNot2)
	if wasteNotActive {
		switch act {
		case action.PrudentTouch:
			qualityGain = 0
			next.WastedActions += 1.0
		case action.PrudentSynthesis:
			progressMultiplier = 0
			next.WastedActions += 1.0
		default:
			durabilityCost *= 0.5
		}
	}

	// Groundwork/Groundwork2 durability shortfall halves the progress
	// multiplier. Evaluated against the already WasteNot-adjusted
	// durability cost, resolving the precedence ambiguity between the two
	// rules by literal source order (durability cost, then Groundwork).
	if (act == action.Groundwork || act == action.Groundwork2) && float64(next.DurabilityState) < durabilityCost {
		progressMultiplier *= 0.5
	}

	progressGain := float64(baseProgress) * desc.ProgressIncreaseMultiplier * progressMultiplier

	// Trained Eye.
	pureLevelDifference := next.Synth.Crafter.Level - next.Synth.Recipe.BaseLevel
	if act == action.TrainedEye {
		if next.Step == 1 && pureLevelDifference >= 10 && !next.Synth.Recipe.Stars {
			qualityGain = next.Synth.Recipe.MaxQuality
		} else {
			next.WastedActions += 1.0
			qualityGain = 0
			cpCost = 0
		}
	}

	// Precise Touch: legal only on Good/Excellent condition; always legal
	// in deterministic (non-sampled) mode.
	if act == action.PreciseTouch {
		legal := !next.Synth.UseConditions || next.Condition == ConditionGood || next.Condition == ConditionExcellent
		if !legal {
			next.WastedActions += 1.0
			qualityGain = 0
			cpCost = 0
		}
	}

	// Reflect requires step 1.
	if act == action.Reflect {
		if next.Step != 1 {
			next.WastedActions += 1.0
			control = 0
			qualityGain = 0
			cpCost = 0
		}
	}
	next.Control = control
	next.QualityGain = qualityGain

	// --- 4. Apply special effects -------------------------------------------
	if act == action.MastersMend {
		next.DurabilityState += 30
		if next.Synth.SolverVars.SolveForCompletion {
			next.WastedActions += 50.0
		}
	}
	if next.CountDowns.Has(action.Manipulation) && next.DurabilityState > 0 && act != action.Manipulation {
		next.DurabilityState += 5
		if next.Synth.SolverVars.SolveForCompletion {
			next.WastedActions += 50.0
		}
	}
	if act == action.ByregotsBlessing {
		if next.CountUps.Has(action.InnerQuiet) {
			next.CountUps.Remove(action.InnerQuiet)
		} else {
			next.WastedActions += 1.0
		}
	}
	if act == action.Reflect {
		if next.Step == 1 {
			next.CountUps.Insert(action.InnerQuiet, 1)
		} else {
			next.WastedActions += 1.0
		}
	}
	if desc.QualityIncreaseMultiplier > 0 && next.CountDowns.Has(action.GreatStrides) {
		next.CountDowns.Remove(action.GreatStrides)
	}
	if desc.OnGood || desc.OnExcellent {
		if useConditionalAction(&next) {
			if act == action.TricksOfTheTrade {
				next.CPState += int(20.0 * pGoodOrExcellent)
			}
		}
	}
	if act == action.Veneration && next.CountDowns.Has(action.Veneration) {
		next.WastedActions += 1.0
	}
	if act == action.Innovation && next.CountDowns.Has(action.Innovation) {
		next.WastedActions += 1.0
	}

	// --- 5. Update counters --------------------------------------------------
	finalAppraisalActive := next.CountDowns.Has(action.FinalAppraisal)
	next.CountDowns.DecrementCountdowns()

	if _, ok := next.CountUps.Get(action.InnerQuiet); ok {
		switch {
		case act == action.PreparatoryTouch:
			next.CountUps.Add(action.InnerQuiet, 2, 9)
		case act == action.PreciseTouch && (!next.Synth.UseConditions || next.Condition == ConditionGood || next.Condition == ConditionExcellent):
			inc := int8(math.Floor(2.0 * successProbability * pGoodOrExcellent))
			next.CountUps.Add(action.InnerQuiet, inc, 9)
		case desc.QualityIncreaseMultiplier > 0 && act != action.Reflect && act != action.TrainedFinesse:
			inc := int8(math.Floor(successProbability))
			next.CountUps.Add(action.InnerQuiet, inc, 9)
		}
	}

	switch desc.Type {
	case action.CountUp:
		if !next.CountUps.Insert(act, 0) {
			next.WastedActions += 1.0
		}
	case action.Countdown:
		if act == action.MuscleMemory && next.Step != 1 {
			next.WastedActions += 1.0
		} else if !next.CountDowns.Insert(act, int8(desc.ActiveTurns)) {
			next.WastedActions += 1.0
		}
	}

	// --- 6. Commit state changes ----------------------------------------------
	progressDelta := int(math.Floor(successProbability * progressGain))
	qualityDelta := int(math.Floor(successProbability * conditionMultiplier * float64(qualityGain)))

	next.ProgressState += progressDelta
	next.QualityState += qualityDelta
	next.DurabilityState -= int(durabilityCost)
	next.CPState -= cpCost
	next.LastStep++

	if finalAppraisalActive && next.ProgressState >= next.Synth.Recipe.Difficulty {
		next.ProgressState = next.Synth.Recipe.Difficulty - 1
	}

	if progressGain > 0 {
		next.Reliability *= successProbability
	}

	// --- 7. Clamp invariants ---------------------------------------------------
	if next.DurabilityState > next.Synth.Recipe.Durability {
		next.DurabilityState = next.Synth.Recipe.Durability
	}
	maxCP := next.Synth.Crafter.CP + next.BonusMaxCP
	if next.CPState > maxCP {
		next.CPState = maxCP
	}

	next.IQCount, _ = next.CountUps.Get(action.InnerQuiet)
	next.Success = successProbability >= 1.0
	next.Action = act
	next.probs = next.probs.advance(pGood, pExcellent)

	return next
}

// useConditionalAction implements the on_good/on_excellent legality gate:
// in deterministic mode the condition check always passes, so CP
// availability is the only real gate.
func useConditionalAction(s *State) bool {
	legal := !s.Synth.UseConditions || s.Condition == ConditionGood || s.Condition == ConditionExcellent
	if s.CPState > 0 && legal {
		s.TrickUses++
		return true
	}
	s.WastedActions += 1.0
	return false
}
