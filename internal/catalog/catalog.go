// Package catalog holds presentation configuration shared by every
// transport: human-readable vaccine labels, map-name aliases and named
// country presets.
package catalog

import (
	"sort"
	"strings"
)

const (
	// PresetGlobal selects every country.
	PresetGlobal = "global"
	// PresetLevant selects the Levant-regional view.
	PresetLevant = "levant"
)

var defaultLabels = map[string]string{
	"BCG":   "Tuberculosis (BCG)",
	"DTP1":  "Diphtheria/Tetanus/Pertussis (1st)",
	"DTP3":  "Diphtheria/Tetanus/Pertussis (3rd)",
	"HEPB3": "Hepatitis B (3rd)",
	"HEPBB": "Hepatitis B (Birth)",
	"HIB3":  "Hib (Haemophilus influenzae type B)",
	"IPV1":  "Polio (IPV1)",
	"IPV2":  "Polio (IPV2)",
	"MCV1":  "Measles (1st)",
	"MCV2":  "Measles (2nd)",
	"MENGA": "Meningococcal A",
	"PCV3":  "Pneumococcal (3rd)",
	"POL3":  "Polio (3rd)",
	"RCV1":  "Rubella",
	"ROTAC": "Rotavirus",
	"YFV":   "Yellow Fever",
}

// Map layers name a few countries differently from the workbook.
var defaultAliases = map[string]string{
	"Syria":     "Syrian Arab Republic",
	"Palestine": "Palestinian Territory",
}

var defaultPresets = map[string][]string{
	PresetLevant: {
		"Israel",
		"Jordan",
		"Lebanon",
		"State of Palestine",
		"Syrian Arab Republic",
	},
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	labels  map[string]string
	aliases map[string]string
	presets map[string][]string
}

// Overrides extends or replaces the built-in tables.
type Overrides struct {
	Labels  map[string]string
	Aliases map[string]string
	Presets map[string][]string
}

// New builds a catalog from the built-in tables merged with overrides.
// Override entries win over built-in ones with the same key.
func New(overrides Overrides) *Catalog {
	c := &Catalog{
		labels:  make(map[string]string, len(defaultLabels)+len(overrides.Labels)),
		aliases: make(map[string]string, len(defaultAliases)+len(overrides.Aliases)),
		presets: make(map[string][]string, len(defaultPresets)+len(overrides.Presets)),
	}

	for code, label := range defaultLabels {
		c.labels[code] = label
	}
	for code, label := range overrides.Labels {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || label == "" {
			continue
		}
		c.labels[code] = label
	}

	for name, alias := range defaultAliases {
		c.aliases[name] = alias
	}
	for name, alias := range overrides.Aliases {
		if name == "" || alias == "" {
			continue
		}
		c.aliases[name] = alias
	}

	for name, countries := range defaultPresets {
		c.presets[name] = countries
	}
	for name, countries := range overrides.Presets {
		name = presetKey(name)
		if name == "" || name == PresetGlobal {
			continue
		}
		members := make([]string, 0, len(countries))
		for _, country := range countries {
			if country = strings.TrimSpace(country); country != "" {
				members = append(members, country)
			}
		}
		// An empty filter means every country, so a memberless preset is
		// dropped rather than silently acting as global.
		if len(members) == 0 {
			continue
		}
		c.presets[name] = members
	}

	return c
}

// Default returns a catalog with only the built-in tables.
func Default() *Catalog {
	return New(Overrides{})
}

// VaccineLabel returns the display label for an indicator code, or the code
// itself when none is known.
func (c *Catalog) VaccineLabel(code string) string {
	if label, ok := c.labels[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	return code
}

// MapName returns the name a map layer expects for country.
func (c *Catalog) MapName(country string) string {
	if alias, ok := c.aliases[country]; ok {
		return alias
	}
	return country
}

// Preset returns the countries of a named preset. The global preset and the
// empty name return nil with ok set, meaning every country.
func (c *Catalog) Preset(name string) (countries []string, ok bool) {
	key := presetKey(name)
	if key == "" || key == PresetGlobal {
		return nil, true
	}
	countries, ok = c.presets[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), countries...), true
}

// PresetNames lists every preset name, global included, sorted.
func (c *Catalog) PresetNames() []string {
	names := make([]string, 0, len(c.presets)+1)
	names = append(names, PresetGlobal)
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func presetKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
