package rotation_test

import (
	"testing"

	"github.com/ichinichi/meigen/pkg/rotation"
	"github.com/stretchr/testify/assert"
)

func TestHistory(t *testing.T) {
	h := rotation.NewHistory(2)
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains("a"))

	h.Push("a")
	h.Push("b")
	assert.Equal(t, []string{"a", "b"}, h.Items())

	h.Push("c")
	assert.Equal(t, []string{"b", "c"}, h.Items())
	assert.False(t, h.Contains("a"))
	assert.True(t, h.Contains("c"))

	items := h.Items()
	items[0] = "z"
	assert.Equal(t, []string{"b", "c"}, h.Items())
}

func TestHistoryZero(t *testing.T) {
	h := rotation.NewHistory(0)
	h.Push("a")
	assert.Equal(t, 0, h.Len())

	var empty *rotation.History
	assert.False(t, empty.Contains("a"))
	assert.Nil(t, empty.Items())
}
