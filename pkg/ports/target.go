package ports

// Target is an addressable UI element with a tag set and a display flag.
// The scheduler reads and mutates both but owns neither.
//
// Implementations must be safe for use from clock callbacks and must report a
// stable ID: the engine keys run coalescing on it, so two Targets with the
// same ID are treated as the same element.
type Target interface {
	// ID returns the stable identity of the element (e.g. its selector).
	ID() string

	// AddTags inserts the given tags into the element's tag set.
	// Adding a present tag is a no-op.
	AddTags(tags ...string)

	// RemoveTags deletes the given tags from the element's tag set.
	// Removing an absent tag is a no-op.
	RemoveTags(tags ...string)

	// HasTag reports whether the tag is currently in the set.
	HasTag(tag string) bool

	// Tags returns a sorted snapshot of the tag set.
	Tags() []string

	// Visible reports the display flag.
	Visible() bool

	// SetVisible flips the display flag.
	SetVisible(visible bool)
}

// Resolver turns a target reference (a selector string) into a live Target.
// It returns domain.ErrTargetNotFound when the reference does not resolve.
type Resolver interface {
	Resolve(ref string) (Target, error)
}
