package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/adapters/memory"
	"github.com/plastic-forks/live-view-transition-inconsistency/pkg/domain"
)

func TestElement(t *testing.T) {
	t.Run("tag set semantics", func(t *testing.T) {
		el := memory.NewElement("#panel", "b", "a")

		el.AddTags("c", "a") // duplicate add is a no-op
		assert.Equal(t, []string{"a", "b", "c"}, el.Tags())

		el.RemoveTags("b", "missing") // absent remove is a no-op
		assert.Equal(t, []string{"a", "c"}, el.Tags())

		assert.True(t, el.HasTag("a"))
		assert.False(t, el.HasTag("b"))
	})

	t.Run("visibility", func(t *testing.T) {
		el := memory.NewElement("#panel")
		assert.True(t, el.Visible())

		el.SetVisible(false)
		assert.False(t, el.Visible())

		hidden := memory.NewElement("#other").Hidden()
		assert.False(t, hidden.Visible())
	})
}

func TestRegistry(t *testing.T) {
	panel := memory.NewElement("#panel")
	menu := memory.NewElement("#menu")
	reg := memory.NewFromElements(panel, menu)

	t.Run("resolves registered elements", func(t *testing.T) {
		got, err := reg.Resolve("#panel")
		require.NoError(t, err)
		assert.Equal(t, "#panel", got.ID())
	})

	t.Run("unknown reference fails with ErrTargetNotFound", func(t *testing.T) {
		_, err := reg.Resolve("#nope")
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
	})

	t.Run("remove drops resolution", func(t *testing.T) {
		reg.Remove("#menu")
		_, err := reg.Resolve("#menu")
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)

		_, ok := reg.Get("#menu")
		assert.False(t, ok)
	})
}
