package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMargherita() *PizzaConfig {
	cfg := NewPizzaConfig("Margherita", 2)
	cfg.SetBasePrice(8.0)

	sizes := NewOptionSet("Size", 3)
	sizes.AddOption(NewOption("Small", 0.0))
	sizes.AddOption(NewOption("Large", 2.0))
	cfg.AddOptionSet(sizes)

	return cfg
}

func TestNewPizzaConfig(t *testing.T) {
	cfg := NewPizzaConfig("Margherita", 2)

	assert.Equal(t, "Margherita", cfg.Name())
	assert.Equal(t, 0.0, cfg.BasePrice())
	assert.Equal(t, 0, cfg.Len())
	assert.Equal(t, 2, cfg.Cap())

	cfg.SetName("Marinara")
	cfg.SetBasePrice(7.5)
	assert.Equal(t, "Marinara", cfg.Name())
	assert.Equal(t, 7.5, cfg.BasePrice())
}

func TestPizzaConfig_AddOptionSetCapacity(t *testing.T) {
	for capacity := -1; capacity <= 4; capacity++ {
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			cfg := NewPizzaConfig("Custom", capacity)

			for i := range max(capacity, 0) {
				assert.True(t, cfg.AddOptionSet(NewOptionSet(fmt.Sprintf("set%d", i), 1)))
			}

			assert.False(t, cfg.AddOptionSet(NewOptionSet("overflow", 1)))
			assert.Equal(t, max(capacity, 0), cfg.Len())
		})
	}
}

func TestPizzaConfig_OptionSet(t *testing.T) {
	cfg := newMargherita()

	got, ok := cfg.OptionSet(0)
	require.True(t, ok)
	assert.Equal(t, "Size", got.Name())

	_, ok = cfg.OptionSet(1)
	assert.False(t, ok, "unoccupied slot within capacity")

	_, ok = cfg.OptionSet(-1)
	assert.False(t, ok)
}

func TestPizzaConfig_FindOptionSetIgnoresCase(t *testing.T) {
	cfg := newMargherita()

	got, ok := cfg.FindOptionSet("sIZE")
	require.True(t, ok)
	assert.Equal(t, "Size", got.Name())

	_, ok = cfg.FindOptionSet("Crust")
	assert.False(t, ok)
}

func TestPizzaConfig_ReplaceOptionSet(t *testing.T) {
	cfg := newMargherita()

	oldSizes, _ := cfg.FindOptionSet("Size")
	oldSmall, _ := oldSizes.FindOption("Small")

	newSizes := NewOptionSet("Size", 2)
	newSmall := NewOption("Small", 0.5)
	newSizes.AddOption(newSmall)

	require.True(t, cfg.ReplaceOptionSet("size", newSizes))

	got, ok := cfg.FindOptionSet("Size")
	require.True(t, ok)
	assert.Same(t, newSizes, got)
	assert.Equal(t, 1, cfg.Len())

	small, ok := got.FindOption("Small")
	require.True(t, ok)
	assert.Same(t, newSmall, small)
	assert.NotSame(t, oldSmall, small)

	// mutating the detached set must not leak into the configuration
	oldSmall.SetPrice(99)
	small, _ = got.FindOption("Small")
	assert.Equal(t, 0.5, small.Price())

	_, ok = got.FindOption("Large")
	assert.False(t, ok, "options are replaced, not merged")
}

func TestPizzaConfig_ReplaceOptionSetMissing(t *testing.T) {
	cfg := newMargherita()
	before := cfg.OptionSets()

	assert.False(t, cfg.ReplaceOptionSet("Crust", NewOptionSet("Crust", 1)))
	assert.Equal(t, before, cfg.OptionSets())
}

func TestPizzaConfig_RejectsNilOptionSet(t *testing.T) {
	cfg := newMargherita()
	before := cfg.OptionSets()

	assert.False(t, cfg.AddOptionSet(nil))
	assert.False(t, cfg.ReplaceOptionSet("Size", nil))
	assert.Equal(t, before, cfg.OptionSets())

	sizes, ok := cfg.FindOptionSet("size")
	require.True(t, ok)
	assert.Equal(t, "Size", sizes.Name())
	assert.True(t, cfg.DeleteOptionSet("Size"))
	assert.Equal(t, 0, cfg.Len())
}

func TestPizzaConfig_UpdateOptionPriceThroughConfig(t *testing.T) {
	cfg := newMargherita()

	sizes, _ := cfg.FindOptionSet("Size")
	large, _ := sizes.FindOption("Large")

	require.True(t, sizes.UpdateOptionPrice("large", 3.0))

	again, _ := cfg.FindOptionSet("size")
	got, _ := again.FindOption("LARGE")
	assert.Same(t, large, got)
	assert.Equal(t, 3.0, large.Price())
}

func TestPizzaConfig_DeleteOptionSet(t *testing.T) {
	crust := NewOptionSet("Crust", 1)
	size := NewOptionSet("Size", 1)
	sauce := NewOptionSet("Sauce", 1)

	tests := []struct {
		name   string
		delete string
		want   []*OptionSet
		wantOK bool
	}{
		{name: "first", delete: "crust", want: []*OptionSet{size, sauce}, wantOK: true},
		{name: "middle", delete: "SIZE", want: []*OptionSet{crust, sauce}, wantOK: true},
		{name: "last", delete: "Sauce", want: []*OptionSet{crust, size}, wantOK: true},
		{name: "missing", delete: "Cheese", want: []*OptionSet{crust, size, sauce}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewPizzaConfig("Custom", 3)
			cfg.AddOptionSet(crust)
			cfg.AddOptionSet(size)
			cfg.AddOptionSet(sauce)

			assert.Equal(t, tt.wantOK, cfg.DeleteOptionSet(tt.delete))
			assert.Equal(t, tt.want, cfg.OptionSets())
			assert.Equal(t, len(tt.want), cfg.Len())

			for _, stale := range cfg.optionSets[cfg.Len():cap(cfg.optionSets)] {
				assert.Nil(t, stale)
			}
		})
	}
}

func TestPizzaConfig_DeleteOptionSetDuplicates(t *testing.T) {
	cfg := NewPizzaConfig("Custom", 2)
	first := NewOptionSet("Size", 1)
	second := NewOptionSet("SIZE", 1)
	cfg.AddOptionSet(first)
	cfg.AddOptionSet(second)

	require.True(t, cfg.DeleteOptionSet("size"))

	got, ok := cfg.FindOptionSet("Size")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestPizzaConfig_DeleteOptionSetFromEmpty(t *testing.T) {
	cfg := NewPizzaConfig("Empty", 1)

	assert.False(t, cfg.DeleteOptionSet("Size"))
	assert.Equal(t, 0, cfg.Len())
}

func TestPizzaConfig_String(t *testing.T) {
	want := "Pizza Configuration: Margherita\n" +
		"Base Price: 8.0\n" +
		"Option Sets:\n" +
		"\tOption Set: Size\n" +
		"\t\tOption[name=Small, price=0.0]\n" +
		"\t\tOption[name=Large, price=2.0]\n"

	assert.Equal(t, want, newMargherita().String())
}

func TestPizzaConfig_StringWithoutOptionSets(t *testing.T) {
	want := "Pizza Configuration: Plain\n" +
		"Base Price: 0.0\n" +
		"Option Sets:\n"

	assert.Equal(t, want, NewPizzaConfig("Plain", 0).String())
}
