package domain

import (
	"fmt"
	"time"
)

// Descriptor is an immutable description of a single class transition.
//
// The three tag lists carry set semantics: order is irrelevant and a tag may
// appear in more than one list. The scheduler applies them at fixed points of
// the run timeline:
//
//   - Start is applied synchronously when the run begins and removed again on
//     the settle frame.
//   - During is applied on the first frame after the run begins and removed at
//     cleanup.
//   - End is applied on the settle frame and removed at cleanup.
//
// Duration measures the distance between run start and cleanup.
type Descriptor struct {
	During   []string
	Start    []string
	End      []string
	Duration time.Duration
}

// NewDescriptor builds a validated Descriptor. Tag slices are copied so the
// caller cannot mutate the descriptor afterwards.
func NewDescriptor(during, start, end []string, duration time.Duration) (Descriptor, error) {
	if duration < 0 {
		return Descriptor{}, fmt.Errorf("duration %v: %w", duration, ErrInvalidDuration)
	}
	return Descriptor{
		During:   copyTags(during),
		Start:    copyTags(start),
		End:      copyTags(end),
		Duration: duration,
	}, nil
}

func copyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
