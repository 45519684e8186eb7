package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertionOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestSetExistingKeepsPosition(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 10)

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestGetAndHas(t *testing.T) {
	m := New[string, int]()
	m.Set("present", 7)

	assert.True(t, m.Has("present"))
	assert.False(t, m.Has("absent"))

	_, ok := m.Get("absent")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	m := New[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)
	m.Set("z", 3)

	var keys []string
	for k, v := range m.All() {
		keys = append(keys, k)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}
