package presets_test

import (
	"testing"

	"github.com/BITIW/The-Great-Giordano/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalog_Shape checks the menu order and that every entry is usable.
func TestCatalog_Shape(t *testing.T) {
	catalog := presets.Catalog()
	require.Len(t, catalog, 7)
	assert.Equal(t, "minimal", catalog[0].Name, "menu starts with the smallest shape")

	seen := make(map[string]bool)
	for _, p := range catalog {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.Greater(t, p.Blocks, 0, "%s must request at least one block", p.Name)
		assert.GreaterOrEqual(t, p.Speed, 0)
		assert.LessOrEqual(t, p.Speed, 10)
		assert.False(t, seen[p.Name], "duplicate preset name %q", p.Name)
		seen[p.Name] = true
	}
}

// TestCatalog_IsACopy keeps callers from mutating the shared catalog.
func TestCatalog_IsACopy(t *testing.T) {
	presets.Catalog()[0].Name = "mutated"
	assert.Equal(t, "minimal", presets.Catalog()[0].Name)
}

// TestByName resolves known names and rejects unknown ones.
func TestByName(t *testing.T) {
	p, ok := presets.ByName("paranoia")
	require.True(t, ok)
	assert.Equal(t, 12, p.Blocks)

	_, ok = presets.ByName("nonexistent")
	assert.False(t, ok)
}
