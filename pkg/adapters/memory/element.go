// Package memory provides in-memory implementations of the engine's driven
// ports: Element (a ports.Target) and Registry (a ports.Resolver). They stand
// in for the host page in tests and scripted reproductions.
package memory

import (
	"sort"
	"sync"
)

// Element is an in-memory target. Safe for concurrent use.
type Element struct {
	id string

	mu      sync.RWMutex
	tags    map[string]struct{}
	visible bool
}

// NewElement creates a visible element with an initial tag set.
func NewElement(id string, tags ...string) *Element {
	e := &Element{
		id:      id,
		tags:    make(map[string]struct{}, len(tags)),
		visible: true,
	}
	for _, tag := range tags {
		e.tags[tag] = struct{}{}
	}
	return e
}

// Hidden marks the element as initially hidden and returns it, for fluent
// construction in tests and scenarios.
func (e *Element) Hidden() *Element {
	e.SetVisible(false)
	return e
}

// ID returns the element's stable identity.
func (e *Element) ID() string {
	return e.id
}

// AddTags inserts tags into the set.
func (e *Element) AddTags(tags ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, tag := range tags {
		e.tags[tag] = struct{}{}
	}
}

// RemoveTags deletes tags from the set.
func (e *Element) RemoveTags(tags ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, tag := range tags {
		delete(e.tags, tag)
	}
}

// HasTag reports membership of a single tag.
func (e *Element) HasTag(tag string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.tags[tag]
	return ok
}

// Tags returns a sorted snapshot of the tag set.
func (e *Element) Tags() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.tags))
	for tag := range e.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Visible reports the display flag.
func (e *Element) Visible() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.visible
}

// SetVisible flips the display flag.
func (e *Element) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = visible
}
