package vizr

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Row is one aggregated record. Dimension values are scalars (string,
// number, or date-like string), measure values are numeric with NaN as
// the missing marker. Metadata is forwarded verbatim to drill-down.
type Row struct {
	Dimensions map[string]any     `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var raw struct {
		Dimensions map[string]any `json:"dimensions"`
		Measures   map[string]any `json:"measures"`
		Metadata   map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Dimensions = raw.Dimensions
	r.Metadata = raw.Metadata
	r.Measures = make(map[string]float64, len(raw.Measures))
	for k, v := range raw.Measures {
		r.Measures[k] = normalizeMeasure(v)
	}
	return nil
}

func (r Row) Dimension(key string) any {
	return r.Dimensions[key]
}

func (r Row) Measure(key string) float64 {
	v, ok := r.Measures[key]
	if !ok {
		return math.NaN()
	}
	return v
}

// normalizeMeasure maps the upstream missing markers (null, empty string,
// dash placeholder, anything non-numeric) to NaN.
func normalizeMeasure(v any) float64 {
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case string:
		s := strings.TrimSpace(x)
		if s == "" || s == "-" || s == "–" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// IsMissing reports whether a measure value carries the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

type DatasetMetadata struct {
	Dimensions  []string `json:"dimensions"`
	Measures    []string `json:"measures"`
	LastUpdated string   `json:"lastUpdated"`
}

// AggregatedDataset is the engine input produced by the upstream query
// service. The engine never mutates it.
type AggregatedDataset struct {
	Data          []Row           `json:"data"`
	TotalCount    int             `json:"totalCount"`
	FilteredCount int             `json:"filteredCount"`
	ExecutionTime float64         `json:"executionTime"`
	CacheHit      bool            `json:"cacheHit"`
	Metadata      DatasetMetadata `json:"metadata"`
}

// Validate enforces schema homogeneity: every row must expose the same
// dimension keys and the same measure keys as the first row. A violation
// fails the whole render rather than producing a partial chart.
func (ds *AggregatedDataset) Validate() error {
	if len(ds.Data) == 0 {
		return nil
	}
	var (
		first = ds.Data[0]
		dims  = keySetAny(first.Dimensions)
		meas  = keySetFloat(first.Measures)
	)
	for i, row := range ds.Data[1:] {
		if !sameKeysAny(dims, row.Dimensions) {
			return fmt.Errorf("row %d: dimension keys differ from row 0", i+1)
		}
		if !sameKeysFloat(meas, row.Measures) {
			return fmt.Errorf("row %d: measure keys differ from row 0", i+1)
		}
	}
	return nil
}

// MeasureKeys returns measure keys in discovery order: the order declared
// by the upstream metadata when present, otherwise the sorted keys of the
// first row.
func (ds *AggregatedDataset) MeasureKeys() []string {
	if len(ds.Data) == 0 {
		return nil
	}
	first := ds.Data[0].Measures
	if len(ds.Metadata.Measures) > 0 {
		var keys []string
		for _, k := range ds.Metadata.Measures {
			if _, ok := first[k]; ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			return keys
		}
	}
	keys := make([]string, 0, len(first))
	for k := range first {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DimensionKeys mirrors MeasureKeys for dimension columns.
func (ds *AggregatedDataset) DimensionKeys() []string {
	if len(ds.Data) == 0 {
		return nil
	}
	first := ds.Data[0].Dimensions
	if len(ds.Metadata.Dimensions) > 0 {
		var keys []string
		for _, k := range ds.Metadata.Dimensions {
			if _, ok := first[k]; ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			return keys
		}
	}
	keys := make([]string, 0, len(first))
	for k := range first {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DimensionValues collects the column of values for one dimension key,
// preserving row order.
func (ds *AggregatedDataset) DimensionValues(key string) []any {
	values := make([]any, 0, len(ds.Data))
	for _, row := range ds.Data {
		values = append(values, row.Dimensions[key])
	}
	return values
}

func keySetAny(m map[string]any) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return set
}

func keySetFloat(m map[string]float64) map[string]struct{} {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return set
}

func sameKeysAny(set map[string]struct{}, m map[string]any) bool {
	if len(set) != len(m) {
		return false
	}
	for k := range m {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

func sameKeysFloat(set map[string]struct{}, m map[string]float64) bool {
	if len(set) != len(m) {
		return false
	}
	for k := range m {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}
