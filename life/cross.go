package life

import "github.com/they4kman/gocross/grid"

// Phase names the stage of the wave life cycle that decided a transition
type Phase int

const (
	PhaseDefault Phase = iota
	PhaseIgnition
	PhaseOutward
	PhaseMaintenance
	PhaseCompletion
	PhaseStable
	PhaseContamination
	PhaseDecay
	PhaseDestruction
)

var phaseNames = map[Phase]string{
	PhaseDefault:       "default",
	PhaseIgnition:      "ignition",
	PhaseOutward:       "outward",
	PhaseMaintenance:   "maintenance",
	PhaseCompletion:    "completion",
	PhaseStable:        "stable",
	PhaseContamination: "contamination",
	PhaseDecay:         "decay",
	PhaseDestruction:   "destruction",
}

func (phase Phase) String() string {
	return phaseNames[phase]
}

// IsShape reports whether the phase is decided by an exact neighborhood shape
func (phase Phase) IsShape() bool {
	switch phase {
	case PhaseIgnition, PhaseOutward, PhaseMaintenance, PhaseCompletion, PhaseStable, PhaseDestruction:
		return true
	}
	return false
}

type pattern [9]CellState

type rule struct {
	phase  Phase
	result CellState
	shape  pattern
	match  func(Neighborhood) bool
}

func (entry rule) matches(neighborhood Neighborhood) bool {
	if entry.match != nil {
		return entry.match(neighborhood)
	}
	return pattern(neighborhood) == entry.shape
}

const (
	o = Dead
	a = Alive
	r = RedWave
	b = BlueWave
)

func shapes(phase Phase, result CellState, patterns ...pattern) []rule {
	rules := make([]rule, len(patterns))
	for i, p := range patterns {
		rules[i] = rule{phase: phase, result: result, shape: p}
	}
	return rules
}

// An alive cell next to a finished wave means a non-cross shape touched it
func contaminated(neighborhood Neighborhood) bool {
	return neighborhood.Contains(Alive) && neighborhood.Contains(BlueWave)
}

// A red cell whose four arms have not all turned blue never completes
func decaying(neighborhood Neighborhood) bool {
	if neighborhood[grid.Center] != RedWave {
		return false
	}
	for _, i := range grid.Orthogonal {
		if neighborhood[i] != BlueWave {
			return true
		}
	}
	return false
}

// crossRules is scanned top to bottom and the first match decides
var crossRules = buildCrossRules()

func buildCrossRules() []rule {
	var rules []rule

	// plus, line and T shapes of live cells start the red wave
	rules = append(rules, shapes(PhaseIgnition, RedWave,
		pattern{o, a, o, a, a, a, o, a, o},
		pattern{o, a, o, o, a, o, o, a, o},
		pattern{o, a, o, o, a, o, a, a, a},
		pattern{a, a, a, o, a, o, o, a, o},
		pattern{a, o, o, a, a, a, a, o, o},
		pattern{o, o, a, a, a, a, o, o, a},
		pattern{o, o, o, a, a, a, o, o, o},
	)...)

	// arm tips turn blue and the blue wave runs back toward the center
	rules = append(rules, shapes(PhaseOutward, BlueWave,
		pattern{o, o, o, o, a, o, a, a, a},
		pattern{a, a, a, o, a, o, o, o, o},
		pattern{o, o, o, o, a, o, o, a, o},
		pattern{o, o, a, o, a, a, o, o, a},
		pattern{a, o, o, a, a, o, a, o, o},
		pattern{o, a, o, o, a, o, o, o, o},
		pattern{o, o, o, a, a, o, o, o, o},
		pattern{o, o, o, o, a, a, o, o, o},
		pattern{o, o, r, b, r, r, o, o, r},
		pattern{r, r, r, o, r, o, o, b, o},
		pattern{r, o, o, r, r, b, r, o, o},
		pattern{o, b, o, o, r, o, r, r, r},
		pattern{o, o, o, r, r, b, o, o, o},
		pattern{o, r, o, o, r, o, o, b, o},
		pattern{o, b, o, o, r, o, o, r, o},
		pattern{o, o, o, b, r, r, o, o, o},
	)...)

	// cells behind the wavefront hold their color until the front passes
	maintenance := []struct {
		result CellState
		shape  pattern
	}{
		{RedWave, pattern{o, r, o, r, r, r, o, r, o}},
		{RedWave, pattern{o, r, o, o, r, o, r, r, r}},
		{RedWave, pattern{r, o, o, r, r, r, r, o, o}},
		{BlueWave, pattern{o, r, o, o, b, o, o, b, o}},
		{BlueWave, pattern{o, b, o, o, b, o, o, o, o}},
		{BlueWave, pattern{o, b, o, o, b, o, o, r, o}},
		{BlueWave, pattern{o, o, o, o, b, b, o, o, o}},
		{BlueWave, pattern{o, o, o, b, b, o, o, o, o}},
		{BlueWave, pattern{o, o, o, b, b, r, o, o, o}},
		{RedWave, pattern{o, r, o, o, r, o, o, r, o}},
		{RedWave, pattern{o, o, o, r, r, r, o, o, o}},
		{RedWave, pattern{o, o, r, r, r, r, o, o, r}},
		{RedWave, pattern{r, r, r, o, r, o, o, r, o}},
		{BlueWave, pattern{o, o, o, r, b, b, o, o, o}},
		{BlueWave, pattern{o, r, o, o, b, o, o, o, o}},
		{BlueWave, pattern{o, o, o, o, b, r, o, o, o}},
		{BlueWave, pattern{o, o, o, r, b, o, o, o, o}},
		{BlueWave, pattern{o, o, o, o, b, o, o, r, o}},
	}
	for _, m := range maintenance {
		rules = append(rules, rule{phase: PhaseMaintenance, result: m.result, shape: m.shape})
	}

	// the blue wave reached the center of a symmetric cross
	rules = append(rules, shapes(PhaseCompletion, BlueWave,
		pattern{o, b, o, b, r, b, o, b, o},
		pattern{o, o, b, o, b, r, o, o, b},
		pattern{b, o, o, r, b, o, b, o, o},
		pattern{b, r, b, o, b, o, o, o, o},
		pattern{o, o, o, o, b, o, b, r, b},
		pattern{b, r, b, o, b, o, o, b, o},
		pattern{o, b, o, o, b, o, b, r, b},
		pattern{o, o, b, b, b, r, o, o, b},
		pattern{b, o, o, r, b, b, b, o, o},
	)...)

	// finished crosses stay blue for good
	rules = append(rules, shapes(PhaseStable, BlueWave,
		pattern{o, b, o, b, b, b, o, b, o},
		pattern{b, o, o, b, b, b, b, o, o},
		pattern{b, b, b, o, b, o, o, o, o},
		pattern{o, o, b, o, b, b, o, o, b},
		pattern{b, o, o, b, b, o, b, o, o},
		pattern{b, b, b, o, b, o, o, b, o},
		pattern{o, o, o, o, b, o, b, b, b},
		pattern{o, b, o, o, b, o, b, b, b},
		pattern{o, o, b, b, b, b, o, o, b},
		pattern{o, o, o, b, b, b, o, o, o},
		pattern{o, o, o, o, b, o, o, b, o},
		pattern{o, b, o, o, b, o, o, b, o},
	)...)

	rules = append(rules,
		rule{phase: PhaseContamination, result: Alive, match: contaminated},
		rule{phase: PhaseDecay, result: Alive, match: decaying},
	)

	// The remaining destruction shapes are all decided by the two predicates
	// above except this one, whose center is already blue.
	rules = append(rules, shapes(PhaseDestruction, Alive,
		pattern{b, r, r, o, b, o, o, b, o},
	)...)

	return rules
}

// CrossEngine evolves the cross game: crosses of live cells are swept by a red
// wave outward and a blue wave back inward and end up blue, everything else
// is destroyed.
type CrossEngine struct{}

func (CrossEngine) Name() string {
	return "cross"
}

func (engine CrossEngine) Next(neighborhood Neighborhood) CellState {
	state, _ := engine.Explain(neighborhood)
	return state
}

// Explain returns the next state along with the phase whose rule decided it
func (CrossEngine) Explain(neighborhood Neighborhood) (CellState, Phase) {
	for _, entry := range crossRules {
		if entry.matches(neighborhood) {
			return entry.result, entry.phase
		}
	}
	return Dead, PhaseDefault
}
