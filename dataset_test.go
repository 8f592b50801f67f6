package vizr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_UnmarshalNormalizesMissingMarkers(t *testing.T) {
	payload := `{
		"dimensions": {"date": "2024-01-01"},
		"measures": {"a": 12.5, "b": null, "c": "", "d": "-", "e": "7", "f": "n/a"},
		"metadata": {"record_id": "r-1"}
	}`
	var row Row
	require.NoError(t, json.Unmarshal([]byte(payload), &row))

	assert.Equal(t, 12.5, row.Measure("a"))
	assert.True(t, IsMissing(row.Measure("b")))
	assert.True(t, IsMissing(row.Measure("c")))
	assert.True(t, IsMissing(row.Measure("d")))
	assert.Equal(t, 7.0, row.Measure("e"))
	assert.True(t, IsMissing(row.Measure("f")))
	assert.Equal(t, "r-1", row.Metadata["record_id"])
}

func TestRow_MeasureAbsentKeyIsMissing(t *testing.T) {
	row := Row{Measures: map[string]float64{}}
	assert.True(t, IsMissing(row.Measure("nope")))
}

func TestDataset_ValidateHomogeneousSchema(t *testing.T) {
	ds := sampleDataset()
	assert.NoError(t, ds.Validate())
}

func TestDataset_ValidateRejectsHeterogeneousRows(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"date": "2024-01-01"}, Measures: map[string]float64{"a": 1}},
			{Dimensions: map[string]any{"site": "x"}, Measures: map[string]float64{"a": 2}},
		},
	}
	err := ds.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension keys")

	ds = &AggregatedDataset{
		Data: []Row{
			{Dimensions: map[string]any{"date": "d"}, Measures: map[string]float64{"a": 1}},
			{Dimensions: map[string]any{"date": "d"}, Measures: map[string]float64{"b": 2}},
		},
	}
	err = ds.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "measure keys")
}

func TestDataset_MeasureKeysFollowMetadataOrder(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{{
			Dimensions: map[string]any{"d": "x"},
			Measures:   map[string]float64{"zeta": 1, "alpha": 2},
		}},
		Metadata: DatasetMetadata{Measures: []string{"zeta", "alpha"}},
	}
	assert.Equal(t, []string{"zeta", "alpha"}, ds.MeasureKeys())
}

func TestDataset_MeasureKeysSortedWithoutMetadata(t *testing.T) {
	ds := &AggregatedDataset{
		Data: []Row{{
			Dimensions: map[string]any{"d": "x"},
			Measures:   map[string]float64{"zeta": 1, "alpha": 2},
		}},
	}
	assert.Equal(t, []string{"alpha", "zeta"}, ds.MeasureKeys())
}
