package domain

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Options is the configuration bag accepted by the named primitives.
// It uses "mapstructure" tags to match the wire-level keys of the original
// attribute syntax (duringTags, startTags, ...), so a dynamic map decoded from
// markup or a scenario file maps onto it directly.
type Options struct {
	// During, Start and End name the transition-scoped tags for each slot of
	// the run timeline. All default to empty.
	During []string `json:"duringTags" yaml:"duringTags" mapstructure:"duringTags"`
	Start  []string `json:"startTags" yaml:"startTags" mapstructure:"startTags"`
	End    []string `json:"endTags" yaml:"endTags" mapstructure:"endTags"`

	// DurationMs is the wall-clock length of the run in milliseconds.
	// Negative values are rejected; zero means "clean up as soon as the frame
	// chain has settled".
	DurationMs int `json:"durationMs" yaml:"durationMs" mapstructure:"durationMs"`

	// Target optionally redirects the primitive to another element. Empty
	// means the element the primitive was invoked on.
	Target string `json:"target,omitempty" yaml:"target,omitempty" mapstructure:"target"`
}

// ParseOptions decodes a dynamic option bag into a typed Options value.
// Unknown keys are ignored, matching the permissive handling of markup
// attributes. Negative durations are rejected.
func ParseOptions(raw map[string]any) (Options, error) {
	var opts Options
	if err := mapstructure.Decode(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the option bag for construction-time errors.
func (o Options) Validate() error {
	if o.DurationMs < 0 {
		return fmt.Errorf("durationMs %d: %w", o.DurationMs, ErrInvalidDuration)
	}
	return nil
}

// Duration returns the run duration as a time.Duration.
func (o Options) Duration() time.Duration {
	return time.Duration(o.DurationMs) * time.Millisecond
}

// Descriptor builds the transition descriptor described by the option bag.
func (o Options) Descriptor() (Descriptor, error) {
	return NewDescriptor(o.During, o.Start, o.End, o.Duration())
}
