package driver

import (
	"github.com/rs/zerolog"

	"imp/interpreter-go/pkg/evaluator"
	"imp/interpreter-go/pkg/state"
)

// DefaultFuel is the budget demonstration runs use unless overridden.
const DefaultFuel = 500

// DefaultTracked is the variable set reported by demonstration runs.
var DefaultTracked = []string{"X", "Y", "Z"}

// Outcome is the harness view of one evaluator run. When Indeterminate is
// set, Variables is nil: exhaustion is reported unchanged, never dressed up
// as a computed state.
type Outcome struct {
	Program       string
	Fuel          int
	Indeterminate bool
	Variables     map[string]int64
}

// Harness runs catalog programs through the fuel-bounded evaluator and
// extracts a fixed set of variables from the result.
type Harness struct {
	logger  zerolog.Logger
	fuel    int
	tracked []string
}

// NewHarness returns a harness with the default budget and tracked set.
func NewHarness(logger zerolog.Logger) *Harness {
	return &Harness{
		logger:  logger,
		fuel:    DefaultFuel,
		tracked: DefaultTracked,
	}
}

// WithFuel overrides the budget for subsequent runs.
func (h *Harness) WithFuel(fuel int) *Harness {
	h.fuel = fuel
	return h
}

// WithTracked overrides the variables extracted from final states.
func (h *Harness) WithTracked(names ...string) *Harness {
	h.tracked = names
	return h
}

// Run evaluates p from initial and reports the tracked variables, or an
// unchanged indeterminate marker when the budget ran out.
func (h *Harness) Run(initial state.State, p Program) Outcome {
	result := evaluator.EvalCommand(initial, p.Command, h.fuel)

	outcome := Outcome{Program: p.Name, Fuel: h.fuel}
	final, ok := result.State()
	if !ok {
		outcome.Indeterminate = true
		h.logger.Warn().
			Str("program", p.Name).
			Int("fuel", h.fuel).
			Msg("run exhausted its budget")
		return outcome
	}

	outcome.Variables = make(map[string]int64, len(h.tracked))
	for _, name := range h.tracked {
		outcome.Variables[name] = final.Get(name)
	}
	h.logger.Info().
		Str("program", p.Name).
		Int("fuel", h.fuel).
		Str("state", final.String()).
		Msg("run complete")
	return outcome
}
