package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ContainsExactlyTenCanonicalPrograms(t *testing.T) {
	c := New()
	all := c.All()
	require.Len(t, all, 10)

	seen := make(map[string]bool)
	for _, p := range all {
		seen[p.ID] = true
	}
	for _, id := range canonicalIDs {
		assert.True(t, seen[id], "missing canonical program %s", id)
	}
}

func TestGet_ReturnsValueCopy(t *testing.T) {
	c := New()
	first, ok := c.Get("sba_7a")
	require.True(t, ok)

	first.StandardCovenants = append(first.StandardCovenants, "mutated")

	second, ok := c.Get("sba_7a")
	require.True(t, ok)
	assert.NotContains(t, second.StandardCovenants, "mutated")
}

func TestGet_UnknownIDReturnsFalse(t *testing.T) {
	c := New()
	_, ok := c.Get("not_a_program")
	assert.False(t, ok)
}
