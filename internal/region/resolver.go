package region

import (
	"sort"
	"strings"
)

// Fallback is the label returned for any code the resolver does not know,
// including empty codes.
const Fallback = "Other"

// defaultLabels maps UNICEF programme region codes to display labels.
var defaultLabels = map[string]string{
	"MENA": "Middle East and North Africa",
	"ROSA": "South Asia",
	"ESAR": "Eastern and Southern Africa",
	"WCAR": "West and Central Africa",
	"ECAR": "Europe and Central Asia",
	"EAPR": "East Asia and the Pacific",
	"LACR": "Latin America and the Caribbean",
}

// Resolver maps raw region codes to human-readable labels.
// The zero value is not usable; use NewResolver or Default.
type Resolver struct {
	labels map[string]string
}

// NewResolver returns a Resolver seeded with the default UNICEF regions.
// Entries in overrides replace or extend the defaults.
func NewResolver(overrides map[string]string) *Resolver {
	labels := make(map[string]string, len(defaultLabels)+len(overrides))
	for code, label := range defaultLabels {
		labels[code] = label
	}
	for code, label := range overrides {
		code = normalize(code)
		if code == "" || strings.TrimSpace(label) == "" {
			continue
		}
		labels[code] = strings.TrimSpace(label)
	}
	return &Resolver{labels: labels}
}

// Default returns a Resolver with only the built-in region codes.
func Default() *Resolver {
	return NewResolver(nil)
}

// Resolve returns the label for code, or Fallback when the code is unknown.
func (r *Resolver) Resolve(code string) string {
	if r == nil {
		return Fallback
	}
	if label, ok := r.labels[normalize(code)]; ok {
		return label
	}
	return Fallback
}

// Known reports whether code has a configured label.
func (r *Resolver) Known(code string) bool {
	if r == nil {
		return false
	}
	_, ok := r.labels[normalize(code)]
	return ok
}

// Codes returns the known region codes in ascending order.
func (r *Resolver) Codes() []string {
	if r == nil {
		return []string{}
	}
	codes := make([]string, 0, len(r.labels))
	for code := range r.labels {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
