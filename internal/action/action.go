// ABOUTME: Static action catalog mapping each crafting action to its effect parameters
// ABOUTME: Closed enum with a const lookup table, no virtual dispatch

package action

// Action is a tagged enumeration over the closed set of craft actions a
// crafter can know. The zero value is Unknown and never appears in a
// populated catalog entry.
type Action uint8

const (
	Unknown Action = iota
	Observe
	BasicSynth
	BasicSynth2
	CarefulSynthesis
	RapidSynthesis
	BasicTouch
	StandardTouch
	HastyTouch
	ByregotsBlessing
	MastersMend
	TricksOfTheTrade
	InnerQuiet
	Manipulation
	WasteNot
	WasteNot2
	Veneration
	Innovation
	GreatStrides
	PreciseTouch
	MuscleMemory
	RapidSynthesis2
	PrudentTouch
	FocusedSynthesis
	FocusedTouch
	Reflect
	PreparatoryTouch
	Groundwork
	DelicateSynthesis
	IntensiveSynthesis
	TrainedEye
	CarefulSynthesis2
	Groundwork2
	AdvancedTouch
	PrudentSynthesis
	TrainedFinesse
	FinalAppraisal
	numActions
)

// Type categorizes how an action's effect lifetime behaves.
type Type uint8

const (
	Immediate Type = iota
	CountUp
	Countdown
)

// Descriptor is the static, per-action parameter set consulted by the
// simulator on every step.
type Descriptor struct {
	ShortName                   string
	FullName                    string
	DurabilityCost              int
	CPCost                      int
	SuccessProbability          float64
	QualityIncreaseMultiplier   float64
	ProgressIncreaseMultiplier  float64
	Type                        Type
	ActiveTurns                 int // meaningful only when Type == Countdown
	Class                       string
	Level                       int
	OnGood                      bool
	OnExcellent                 bool
}

// catalog is indexed by Action value. Built once at init from the fixed
// table below; never mutated afterward.
var catalog [numActions]Descriptor

var shortNameIndex map[string]Action

func init() {
	populateCatalog()

	shortNameIndex = make(map[string]Action, numActions)
	for a := Action(1); a < numActions; a++ {
		if d := catalog[a]; d.ShortName != "" {
			shortNameIndex[d.ShortName] = a
		}
	}
}

// Describe returns the static descriptor for a.
func Describe(a Action) Descriptor {
	return catalog[a]
}

// ByShortName resolves the external (camelCase) action identifier used at
// the API boundary (see the input schema's action_id set) to its Action.
// Reports Unknown, false for an unrecognized identifier.
func ByShortName(name string) (Action, bool) {
	a, ok := shortNameIndex[name]
	return a, ok
}

// Count is the number of real (non-Unknown) actions in the catalog.
func Count() int {
	return int(numActions) - 1
}

func (a Action) String() string {
	if a == Unknown || a >= numActions {
		return "unknown"
	}
	return catalog[a].ShortName
}

// Table values transcribed from the reference action table: shortName,
// fullName, durability, cp, successProbability, qualityMultiplier,
// progressMultiplier, type, activeTurns (countdown length), class, level,
// onGood, onExcellent.
func populateCatalog() {
	catalog[Observe] = Descriptor{"observe", "Observe", 0, 7, 1.0, 0.0, 0.0, Immediate, 0, "All", 13, false, false}
	catalog[BasicSynth] = Descriptor{"basicSynth", "Basic Synthesis", 10, 0, 1.0, 0.0, 1.0, Immediate, 0, "All", 1, false, false}
	catalog[BasicSynth2] = Descriptor{"basicSynth2", "Basic Synthesis", 10, 0, 1.0, 0.0, 1.2, Immediate, 0, "All", 31, false, false}
	catalog[CarefulSynthesis] = Descriptor{"carefulSynthesis", "Careful Synthesis", 10, 7, 1.0, 0.0, 1.5, Immediate, 0, "All", 62, false, false}
	catalog[RapidSynthesis] = Descriptor{"rapidSynthesis", "Rapid Synthesis", 10, 0, 0.5, 0.0, 2.5, Immediate, 0, "All", 9, false, false}
	catalog[BasicTouch] = Descriptor{"basicTouch", "Basic Touch", 10, 18, 1.0, 1.0, 0.0, Immediate, 0, "All", 5, false, false}
	catalog[StandardTouch] = Descriptor{"standardTouch", "Standard Touch", 10, 32, 1.0, 1.25, 0.0, Immediate, 0, "All", 18, false, false}
	catalog[HastyTouch] = Descriptor{"hastyTouch", "Hasty Touch", 10, 0, 0.6, 1.0, 0.0, Immediate, 0, "All", 9, false, false}
	catalog[ByregotsBlessing] = Descriptor{"byregotsBlessing", "Byregot's Blessing", 10, 24, 1.0, 1.0, 0.0, Immediate, 0, "All", 50, false, false}
	catalog[MastersMend] = Descriptor{"mastersMend", "Master's Mend", 0, 88, 1.0, 0.0, 0.0, Immediate, 0, "All", 7, false, false}
	catalog[TricksOfTheTrade] = Descriptor{"tricksOfTheTrade", "Tricks of the Trade", 0, 0, 1.0, 0.0, 0.0, Immediate, 0, "All", 13, true, true}
	catalog[InnerQuiet] = Descriptor{"innerQuiet", "Inner Quiet", 0, 18, 1.0, 0.0, 0.0, CountUp, 0, "All", 11, false, false}
	catalog[Manipulation] = Descriptor{"manipulation", "Manipulation", 0, 96, 1.0, 0.0, 0.0, Countdown, 8, "All", 65, false, false}
	catalog[WasteNot] = Descriptor{"wasteNot", "Waste Not", 0, 56, 1.0, 0.0, 0.0, Countdown, 4, "All", 15, false, false}
	catalog[WasteNot2] = Descriptor{"wasteNot2", "Waste Not II", 0, 98, 1.0, 0.0, 0.0, Countdown, 8, "All", 47, false, false}
	catalog[Veneration] = Descriptor{"veneration", "Veneration", 0, 18, 1.0, 0.0, 0.0, Countdown, 4, "All", 15, false, false}
	catalog[Innovation] = Descriptor{"innovation", "Innovation", 0, 18, 1.0, 0.0, 0.0, Countdown, 4, "All", 26, false, false}
	catalog[GreatStrides] = Descriptor{"greatStrides", "Great Strides", 0, 32, 1.0, 0.0, 0.0, Countdown, 3, "All", 21, false, false}
	catalog[PreciseTouch] = Descriptor{"preciseTouch", "Precise Touch", 10, 18, 1.0, 1.5, 0.0, Immediate, 0, "All", 53, true, true}
	catalog[MuscleMemory] = Descriptor{"muscleMemory", "Muscle Memory", 10, 6, 1.0, 0.0, 3.0, Countdown, 5, "All", 54, false, false}
	catalog[RapidSynthesis2] = Descriptor{"rapidSynthesis2", "Rapid Synthesis", 10, 0, 0.5, 0.0, 5.0, Immediate, 0, "All", 63, false, false}
	catalog[PrudentTouch] = Descriptor{"prudentTouch", "Prudent Touch", 5, 25, 1.0, 1.0, 0.0, Immediate, 0, "All", 66, false, false}
	catalog[FocusedSynthesis] = Descriptor{"focusedSynthesis", "Focused Synthesis", 10, 5, 0.5, 0.0, 2.0, Immediate, 0, "All", 67, false, false}
	catalog[FocusedTouch] = Descriptor{"focusedTouch", "Focused Touch", 10, 18, 0.5, 1.5, 0.0, Immediate, 0, "All", 68, false, false}
	catalog[Reflect] = Descriptor{"reflect", "Reflect", 10, 6, 1.0, 1.0, 0.0, Immediate, 0, "All", 69, false, false}
	catalog[PreparatoryTouch] = Descriptor{"preparatoryTouch", "Preparatory Touch", 20, 40, 1.0, 2.0, 0.0, Immediate, 0, "All", 71, false, false}
	catalog[Groundwork] = Descriptor{"groundwork", "Groundwork", 20, 18, 1.0, 0.0, 3.0, Immediate, 0, "All", 72, false, false}
	catalog[DelicateSynthesis] = Descriptor{"delicateSynthesis", "Delicate Synthesis", 10, 32, 1.0, 1.0, 1.0, Immediate, 0, "All", 76, false, false}
	catalog[IntensiveSynthesis] = Descriptor{"intensiveSynthesis", "Intensive Synthesis", 10, 6, 1.0, 0.0, 4.0, Immediate, 0, "All", 78, true, true}
	catalog[TrainedEye] = Descriptor{"trainedEye", "Trained Eye", 10, 250, 1.0, 0.0, 0.0, Immediate, 0, "All", 80, false, false}
	catalog[CarefulSynthesis2] = Descriptor{"carefulSynthesis2", "Careful Synthesis", 10, 7, 1.0, 0.0, 1.8, Immediate, 0, "All", 82, false, false}
	catalog[Groundwork2] = Descriptor{"groundwork2", "Groundwork", 20, 18, 1.0, 0.0, 3.6, Immediate, 0, "All", 86, false, false}
	catalog[AdvancedTouch] = Descriptor{"advancedTouch", "Advanced Touch", 10, 46, 1.0, 1.5, 0.0, Immediate, 0, "All", 84, false, false}
	catalog[PrudentSynthesis] = Descriptor{"prudentSynthesis", "Prudent Synthesis", 5, 18, 1.0, 0.0, 1.8, Immediate, 0, "All", 88, false, false}
	catalog[TrainedFinesse] = Descriptor{"trainedFinesse", "Trained Finesse", 0, 32, 1.0, 1.0, 0.0, Immediate, 0, "All", 90, false, false}
	// FinalAppraisal has no entry in the reference table (added in a later
	// game patch than the table's source); parameters below match its
	// published in-game values rather than a source transcription.
	catalog[FinalAppraisal] = Descriptor{"finalAppraisal", "Final Appraisal", 0, 1, 1.0, 0.0, 0.0, Countdown, 5, "All", 42, false, false}
}
