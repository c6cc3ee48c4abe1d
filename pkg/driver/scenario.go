package driver

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"imp/interpreter-go/pkg/state"
)

// Scenario binds a catalog program to an initial state, a budget, and the
// expected outcome, as declared in a YAML scenario file. An omitted fuel
// falls back to the harness default.
type Scenario struct {
	Name    string           `yaml:"name"`
	Program string           `yaml:"program"`
	Fuel    int              `yaml:"fuel"`
	Initial map[string]int64 `yaml:"initial"`
	Expect  ScenarioExpect   `yaml:"expect"`
}

// ScenarioExpect is either an indeterminate marker or expected final
// variable values.
type ScenarioExpect struct {
	Indeterminate bool             `yaml:"indeterminate"`
	Variables     map[string]int64 `yaml:"variables"`
}

// ValidationError aggregates scenario file validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "scenarios: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("scenario validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads and validates a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}

	var issues []string
	seen := make(map[string]bool)
	for idx, sc := range file.Scenarios {
		label := sc.Name
		if label == "" {
			label = fmt.Sprintf("scenario #%d", idx+1)
			issues = append(issues, fmt.Sprintf("%s: missing name", label))
		}
		if seen[sc.Name] && sc.Name != "" {
			issues = append(issues, fmt.Sprintf("%s: duplicate name", label))
		}
		seen[sc.Name] = true
		if _, err := Lookup(sc.Program); err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", label, err))
		}
		if sc.Fuel < 0 {
			issues = append(issues, fmt.Sprintf("%s: negative fuel %d", label, sc.Fuel))
		}
		if sc.Expect.Indeterminate && len(sc.Expect.Variables) > 0 {
			issues = append(issues, fmt.Sprintf("%s: expects both indeterminacy and variables", label))
		}
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return file.Scenarios, nil
}

// RunScenario executes one scenario and reports whether the outcome matched
// the expectation; a non-nil error means the scenario itself is unusable.
func (h *Harness) RunScenario(sc Scenario) (Outcome, error) {
	program, err := Lookup(sc.Program)
	if err != nil {
		return Outcome{}, err
	}

	fuel := sc.Fuel
	if fuel == 0 {
		fuel = h.fuel
	}
	runner := &Harness{logger: h.logger, fuel: fuel, tracked: h.tracked}
	return runner.Run(state.FromMap(sc.Initial), program), nil
}

// Matches checks an outcome against the scenario's expectation.
func (sc Scenario) Matches(o Outcome) error {
	if sc.Expect.Indeterminate != o.Indeterminate {
		return fmt.Errorf("%s: indeterminate = %v, want %v", sc.Name, o.Indeterminate, sc.Expect.Indeterminate)
	}
	for name, want := range sc.Expect.Variables {
		if got := o.Variables[name]; got != want {
			return fmt.Errorf("%s: %s = %d, want %d", sc.Name, name, got, want)
		}
	}
	return nil
}
