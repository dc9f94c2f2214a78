// Package scenario implements the scripted reproduction harness: a YAML file
// describes a set of targets and a sequence of primitive invocations and
// clock advances, and the player executes it against a virtual clock,
// recording the observed tag-set timeline.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TargetSpec declares one element of the simulated page.
type TargetSpec struct {
	ID     string   `yaml:"id"`
	Tags   []string `yaml:"tags"`
	Hidden bool     `yaml:"hidden"`
}

// Step is one instruction of a scenario. Exactly one action key must be set:
// a primitive (show, hide, toggle, add_class, remove_class, transition), a
// clock advance (frames, wait), cancel, or snapshot.
type Step struct {
	Show        string `yaml:"show"`
	Hide        string `yaml:"hide"`
	Toggle      string `yaml:"toggle"`
	AddClass    string `yaml:"add_class"`
	RemoveClass string `yaml:"remove_class"`
	Transition  string `yaml:"transition"`
	Cancel      string `yaml:"cancel"`
	Snapshot    string `yaml:"snapshot"`

	// Tags parameterizes add_class/remove_class.
	Tags []string `yaml:"tags"`

	// Opts is the primitive's option bag, decoded with the same keys the
	// markup attributes use (duringTags, startTags, endTags, durationMs).
	Opts map[string]any `yaml:"opts"`

	// In and Out are the toggle option bags.
	In  map[string]any `yaml:"in"`
	Out map[string]any `yaml:"out"`

	// Frames advances the virtual clock by whole paint frames.
	Frames int `yaml:"frames"`

	// WaitMs advances the virtual wall clock in milliseconds.
	WaitMs int `yaml:"wait"`
}

// Scenario is a named reproduction script.
type Scenario struct {
	Name    string       `yaml:"name"`
	Targets []TargetSpec `yaml:"targets"`
	Steps   []Step       `yaml:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks structural integrity: every target has an ID, every step
// has exactly one action.
func (sc *Scenario) Validate() error {
	if len(sc.Targets) == 0 {
		return fmt.Errorf("scenario %q declares no targets", sc.Name)
	}
	for i, t := range sc.Targets {
		if t.ID == "" {
			return fmt.Errorf("target %d has no id", i)
		}
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	actions := 0
	for _, set := range []bool{
		s.Show != "", s.Hide != "", s.Toggle != "", s.AddClass != "",
		s.RemoveClass != "", s.Transition != "", s.Cancel != "",
		s.Snapshot != "", s.Frames != 0, s.WaitMs != 0,
	} {
		if set {
			actions++
		}
	}
	if actions != 1 {
		return fmt.Errorf("expected exactly one action, got %d", actions)
	}
	if s.Frames < 0 {
		return fmt.Errorf("frames must be positive, got %d", s.Frames)
	}
	if s.WaitMs < 0 {
		return fmt.Errorf("wait must be positive, got %d", s.WaitMs)
	}
	if (s.AddClass != "" || s.RemoveClass != "") && len(s.Tags) == 0 {
		return fmt.Errorf("add_class/remove_class requires tags")
	}
	return nil
}
