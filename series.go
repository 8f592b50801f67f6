package vizr

import (
	"strings"
)

// SeriesPoint is a dataset row paired with the resolved scalar value for
// one series' measure.
type SeriesPoint struct {
	Row
	Value float64
}

// Series is the per-measure track drawn as one line, bar group, or area
// layer. Identity is 1:1 with a measure key; visibility is owned by the
// legend controller and survives series rebuilds.
type Series struct {
	ID          string
	DisplayName string
	Color       string
	Visible     bool
	Points      []SeriesPoint
}

// BuildSeries derives one series per measure key, in discovery order, with
// deterministic palette colors. Re-running on the same dataset yields the
// same ids, names, and colors. Empty datasets yield an empty list.
func BuildSeries(ds *AggregatedDataset, palette Palette) []Series {
	if ds == nil || len(ds.Data) == 0 {
		return nil
	}
	keys := ds.MeasureKeys()
	series := make([]Series, 0, len(keys))
	for i, key := range keys {
		points := make([]SeriesPoint, 0, len(ds.Data))
		for _, row := range ds.Data {
			points = append(points, SeriesPoint{
				Row:   row,
				Value: row.Measure(key),
			})
		}
		series = append(series, Series{
			ID:          key,
			DisplayName: displayName(key),
			Color:       palette.At(i),
			Visible:     true,
			Points:      points,
		})
	}
	return series
}

var aggregationVerbs = map[string]struct{}{
	"sum":   {},
	"avg":   {},
	"min":   {},
	"max":   {},
	"count": {},
}

// displayName turns a measure key into a label: a trailing
// underscore-delimited aggregation verb becomes a parenthesized suffix,
// the rest is title-cased. "revenue_sum" -> "Revenue (Sum)",
// "growth" -> "Growth".
func displayName(key string) string {
	idx := strings.LastIndex(key, "_")
	if idx > 0 {
		verb := key[idx+1:]
		if _, ok := aggregationVerbs[verb]; ok {
			return titleCase(key[:idx]) + " (" + titleCase(verb) + ")"
		}
	}
	return titleCase(key)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// VisibleSeries filters to the currently visible series, preserving order.
func VisibleSeries(series []Series) []Series {
	var visible []Series
	for _, s := range series {
		if s.Visible {
			visible = append(visible, s)
		}
	}
	return visible
}
