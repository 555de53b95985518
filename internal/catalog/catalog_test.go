package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaccineLabel(t *testing.T) {
	c := Default()

	tests := []struct {
		code string
		want string
	}{
		{"DTP1", "Diphtheria/Tetanus/Pertussis (1st)"},
		{"mcv2", "Measles (2nd)"},
		{" YFV ", "Yellow Fever"},
		{"XYZ", "XYZ"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, c.VaccineLabel(tt.code))
		})
	}
}

func TestMapName(t *testing.T) {
	c := Default()

	assert.Equal(t, "Syrian Arab Republic", c.MapName("Syria"))
	assert.Equal(t, "Palestinian Territory", c.MapName("Palestine"))
	assert.Equal(t, "Jordan", c.MapName("Jordan"))
}

func TestPreset(t *testing.T) {
	c := Default()

	t.Run("global is unrestricted", func(t *testing.T) {
		countries, ok := c.Preset("global")
		assert.True(t, ok)
		assert.Nil(t, countries)

		countries, ok = c.Preset("")
		assert.True(t, ok)
		assert.Nil(t, countries)
	})

	t.Run("levant", func(t *testing.T) {
		countries, ok := c.Preset("Levant")
		require.True(t, ok)
		assert.Contains(t, countries, "Jordan")
		assert.Contains(t, countries, "Lebanon")
		assert.Len(t, countries, 5)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		countries, _ := c.Preset("levant")
		countries[0] = "Mutated"
		again, _ := c.Preset("levant")
		assert.NotContains(t, again, "Mutated")
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := c.Preset("atlantis")
		assert.False(t, ok)
	})
}

func TestOverrides(t *testing.T) {
	c := New(Overrides{
		Labels:  map[string]string{"dtp1": "DTP first dose", "NEW": "New vaccine"},
		Aliases: map[string]string{"Turkey": "Türkiye"},
		Presets: map[string][]string{
			"Gulf":   {"Oman", "Qatar"},
			"global": {"ignored"},
		},
	})

	assert.Equal(t, "DTP first dose", c.VaccineLabel("DTP1"))
	assert.Equal(t, "New vaccine", c.VaccineLabel("NEW"))
	assert.Equal(t, "Measles (1st)", c.VaccineLabel("MCV1"))
	assert.Equal(t, "Türkiye", c.MapName("Turkey"))
	assert.Equal(t, "Syrian Arab Republic", c.MapName("Syria"))

	gulf, ok := c.Preset("gulf")
	require.True(t, ok)
	assert.Equal(t, []string{"Oman", "Qatar"}, gulf)

	global, ok := c.Preset("global")
	assert.True(t, ok)
	assert.Nil(t, global)

	assert.Equal(t, []string{"global", "gulf", "levant"}, c.PresetNames())
}

func TestOverridesDropMemberlessPresets(t *testing.T) {
	c := New(Overrides{
		Presets: map[string][]string{
			"empty": {},
			"blank": {"", "  "},
			"trim":  {" Oman ", ""},
		},
	})

	_, ok := c.Preset("empty")
	assert.False(t, ok)
	_, ok = c.Preset("blank")
	assert.False(t, ok)

	trim, ok := c.Preset("trim")
	require.True(t, ok)
	assert.Equal(t, []string{"Oman"}, trim)

	assert.Equal(t, []string{"global", "levant", "trim"}, c.PresetNames())
}
