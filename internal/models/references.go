package models

// ReferencesModel carries the display metadata for codes used in a response,
// so clients can label charts without a second request.
type ReferencesModel struct {
	Indicators []Indicator `json:"indicators"`
	Regions    []Region    `json:"regions"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Indicators: []Indicator{},
		Regions:    []Region{},
	}
}

// AddIndicator appends an indicator unless one with the same code is present.
func (r *ReferencesModel) AddIndicator(indicator Indicator) {
	for _, existing := range r.Indicators {
		if existing.Code == indicator.Code {
			return
		}
	}
	r.Indicators = append(r.Indicators, indicator)
}

// AddRegion appends a region unless one with the same label is present.
func (r *ReferencesModel) AddRegion(region Region) {
	for _, existing := range r.Regions {
		if existing.Label == region.Label {
			return
		}
	}
	r.Regions = append(r.Regions, region)
}
