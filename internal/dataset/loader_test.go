package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset/datasettest"
	"github.com/YnHaddad/MSBA382Dash/internal/region"
)

func TestLoadSample(t *testing.T) {
	path := datasettest.WriteSample(t, t.TempDir())
	loader := dataset.NewLoader(region.Default(), nil)

	ds, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"DTP1", "DTP3", "MCV1"}, ds.Indicators())
	assert.Equal(t, []string{"Atlantis", "Jordan", "Lebanon", "Nepal"}, ds.Countries())
	assert.Equal(t, []int{2019, 2020, 2021}, ds.Years())
	assert.Equal(t, path, ds.Source().Path)

	_, ok := ds.Table("ReadMe")
	assert.False(t, ok, "reserved sheet must not be loaded")
	_, ok = ds.Table("regional_global")
	assert.False(t, ok, "reserved sheet must not be loaded")

	dtp3, ok := ds.Table("DTP3")
	require.True(t, ok)
	assert.Equal(t, 4, dtp3.Len())

	lebanon, ok := dtp3.Row("Lebanon")
	require.True(t, ok)
	assert.Equal(t, "MENA", lebanon.RegionCode)
	assert.Equal(t, "Middle East and North Africa", lebanon.RegionLabel)

	v, ok := lebanon.Value(2019)
	assert.True(t, ok)
	assert.Equal(t, 82.0, v)
	_, ok = lebanon.Value(2020)
	assert.False(t, ok, "blank cell must be unknown, not zero")
	assert.Equal(t, []int{2019, 2021}, lebanon.Years())

	atlantis, ok := dtp3.Row("Atlantis")
	require.True(t, ok)
	assert.Equal(t, region.Fallback, atlantis.RegionLabel)

	dtp1, _ := ds.Table("DTP1")
	atlantisDTP1, _ := dtp1.Row("Atlantis")
	zero, ok := atlantisDTP1.Value(2021)
	assert.True(t, ok, "recorded zero is a value")
	assert.Equal(t, 0.0, zero)

	label, ok := ds.RegionOf("Nepal")
	assert.True(t, ok)
	assert.Equal(t, "South Asia", label)
}

func TestLoadIsIdempotent(t *testing.T) {
	path := datasettest.WriteSample(t, t.TempDir())
	loader := dataset.NewLoader(nil, nil)

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	diff := cmp.Diff(first, second,
		cmp.AllowUnexported(dataset.Dataset{}, dataset.IndicatorTable{}, dataset.Row{}))
	assert.Empty(t, diff)
}

func TestLoadKeepsOutOfRangeValues(t *testing.T) {
	path := datasettest.WriteWorkbook(t, t.TempDir(), "noisy.xlsx", []datasettest.Sheet{
		{
			Name:   "BCG",
			Header: datasettest.Header(2022, 2023),
			Rows: [][]any{
				{"Jordan", "MENA", 104.5, "n/a"},
				{"  ", "MENA", 90, 90},
			},
		},
	})

	ds, err := dataset.NewLoader(nil, nil).Load(path)
	require.NoError(t, err)

	bcg, ok := ds.Table("BCG")
	require.True(t, ok)
	assert.Equal(t, 1, bcg.Len(), "rows with a blank country are skipped")

	row, _ := bcg.Row("Jordan")
	v, ok := row.Value(2022)
	assert.True(t, ok)
	assert.Equal(t, 104.5, v, "values are not clamped")
	_, ok = row.Value(2023)
	assert.False(t, ok, "non-numeric cells are unknown")
}

func TestLoadAlternateRegionColumn(t *testing.T) {
	path := datasettest.WriteWorkbook(t, t.TempDir(), "alt.xlsx", []datasettest.Sheet{
		{
			Name:   "POL3",
			Header: []any{"iso3", "Country", "region_code", 2020},
			Rows:   [][]any{{"JOR", "Jordan", "MENA", 88}},
		},
	})

	ds, err := dataset.NewLoader(nil, nil).Load(path)
	require.NoError(t, err)

	table, _ := ds.Table("POL3")
	row, ok := table.Row("Jordan")
	require.True(t, ok)
	assert.Equal(t, "Middle East and North Africa", row.RegionLabel)
}

func TestLoadDuplicateCountryKeepsFirst(t *testing.T) {
	path := datasettest.WriteWorkbook(t, t.TempDir(), "dup.xlsx", []datasettest.Sheet{
		{
			Name:   "MCV2",
			Header: datasettest.Header(2020),
			Rows: [][]any{
				{"Jordan", "MENA", 70},
				{"Jordan", "MENA", 10},
			},
		},
	})

	ds, err := dataset.NewLoader(nil, nil).Load(path)
	require.NoError(t, err)

	table, _ := ds.Table("MCV2")
	assert.Equal(t, 1, table.Len())
	row, _ := table.Row("Jordan")
	v, _ := row.Value(2020)
	assert.Equal(t, 70.0, v)
}

func TestLoadDuplicateYearColumnKeepsFirst(t *testing.T) {
	path := datasettest.WriteWorkbook(t, t.TempDir(), "dupyear.xlsx", []datasettest.Sheet{
		{
			Name:   "DTP1",
			Header: datasettest.Header(2020, 2020, 2021),
			Rows: [][]any{
				{"Jordan", "MENA", 10, 90, 80},
			},
		},
	})
	loader := dataset.NewLoader(nil, nil)

	for i := 0; i < 20; i++ {
		ds, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []int{2020, 2021}, ds.Years())
		table, _ := ds.Table("DTP1")
		row, ok := table.Row("Jordan")
		require.True(t, ok)
		v, ok := row.Value(2020)
		require.True(t, ok)
		assert.Equal(t, 10.0, v)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := dataset.NewLoader(nil, nil).Load(filepath.Join(t.TempDir(), "missing.xlsx"))
		require.Error(t, err)

		var notFound *dataset.SourceNotFoundError
		assert.True(t, errors.As(err, &notFound))
		assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := dataset.NewLoader(nil, nil).Load(t.TempDir())
		assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
	})

	t.Run("not a workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("country,2020\nJordan,90\n"), 0o644))

		_, err := dataset.NewLoader(nil, nil).Load(path)
		assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
	})

	t.Run("sheet without country column", func(t *testing.T) {
		path := datasettest.WriteWorkbook(t, t.TempDir(), "nocountry.xlsx", []datasettest.Sheet{
			{Name: "BCG", Header: []any{"nation", "unicef_region", 2020}, Rows: [][]any{{"Jordan", "MENA", 90}}},
		})

		_, err := dataset.NewLoader(nil, nil).Load(path)
		require.Error(t, err)

		var formatErr *dataset.SourceFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, "BCG", formatErr.Sheet)
		assert.Contains(t, formatErr.Reason, "country")
		assert.ErrorIs(t, err, dataset.ErrSourceFormat)
	})

	t.Run("sheet without year columns", func(t *testing.T) {
		path := datasettest.WriteWorkbook(t, t.TempDir(), "noyears.xlsx", []datasettest.Sheet{
			{Name: "BCG", Header: []any{"country", "unicef_region", "FY2020"}, Rows: [][]any{{"Jordan", "MENA", 90}}},
		})

		_, err := dataset.NewLoader(nil, nil).Load(path)
		var formatErr *dataset.SourceFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Contains(t, formatErr.Reason, "year")
	})

	t.Run("only reserved sheets", func(t *testing.T) {
		path := datasettest.WriteWorkbook(t, t.TempDir(), "reserved.xlsx", []datasettest.Sheet{
			{Name: "ReadMe", Header: []any{"About"}},
			{Name: "regional_global", Header: []any{"region", 2020}},
		})

		_, err := dataset.NewLoader(nil, nil).Load(path)
		assert.ErrorIs(t, err, dataset.ErrSourceFormat)
	})
}
