package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

func TestNewTable(t *testing.T) {
	coverage := map[int]float64{2020: 90, 2018: 85}
	table := NewTable("DTP1", nil, []RawRow{
		{Country: "Jordan", RegionCode: "MENA", Coverage: coverage},
		{Country: "", RegionCode: "MENA", Coverage: map[int]float64{2020: 1}},
		{Country: "Nepal", RegionCode: "", Coverage: map[int]float64{2021: 95}},
	}, region.Default())

	assert.Equal(t, "DTP1", table.Indicator())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []int{2018, 2020, 2021}, table.Years(), "years derived from rows")

	coverage[2020] = 0
	row, ok := table.Row("Jordan")
	require.True(t, ok)
	v, _ := row.Value(2020)
	assert.Equal(t, 90.0, v, "table must not alias caller maps")

	nepal, _ := table.Row("Nepal")
	assert.Equal(t, region.Fallback, nepal.RegionLabel)
}

func TestNewTableDeclaredYears(t *testing.T) {
	table := NewTable("BCG", []int{2021, 2019, 2020}, []RawRow{
		{Country: "Jordan", Coverage: map[int]float64{2020: 90}},
	}, region.Default())

	assert.Equal(t, []int{2019, 2020, 2021}, table.Years())
}

func TestAccessorsReturnCopies(t *testing.T) {
	table := NewTable("BCG", []int{2020}, []RawRow{
		{Country: "Jordan", Coverage: map[int]float64{2020: 90}},
	}, region.Default())
	ds := New(Identity{Path: "x.xlsx"}, table)

	ds.Indicators()[0] = "mutated"
	table.Years()[0] = 1900
	table.Rows()[0].Country = "mutated"

	assert.Equal(t, []string{"BCG"}, ds.Indicators())
	assert.Equal(t, []int{2020}, table.Years())
	assert.Equal(t, "Jordan", table.Rows()[0].Country)
}

func TestNewDatasetKeepsFirstDuplicateIndicator(t *testing.T) {
	first := NewTable("BCG", []int{2020}, nil, region.Default())
	second := NewTable("BCG", []int{2021}, nil, region.Default())

	ds := New(Identity{}, first, nil, second)
	table, ok := ds.Table("BCG")
	require.True(t, ok)
	assert.Same(t, first, table)
	assert.Equal(t, 1, ds.Len())
}

func TestRegionOfUnknownCountry(t *testing.T) {
	ds := New(Identity{})
	_, ok := ds.RegionOf("Jordan")
	assert.False(t, ok)
	assert.Empty(t, ds.Countries())
	assert.Empty(t, ds.Years())
}
