package vizr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

type ScalerConstraint interface {
	~float64 | ~string | time.Time
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Diff(v time.Time) float64 {
	diff := v.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Extend() float64 {
	diff := t.lst.Sub(t.fst)
	return float64(diff)
}

func (t timeDomain) Values(c int) []time.Time {
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	if n.Extend() == 0 {
		return n.Range.Min()
	}
	return n.Diff(v) * n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	if s.Extend() == 0 {
		return s.Range.Min()
	}
	return s.Diff(v) * s.Space()
}

func (s timeScaler) Space() float64 {
	return s.Len() / s.Extend()
}

type stringScaler struct {
	Range
	Strings []string
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return float64(x) * s.Space()
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s stringScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}

type ScaleKind int

const (
	ScaleContinuous ScaleKind = iota
	ScaleTemporal
	ScaleCategorical
)

func (k ScaleKind) String() string {
	switch k {
	case ScaleTemporal:
		return "temporal"
	case ScaleCategorical:
		return "categorical"
	default:
		return "continuous"
	}
}

// AxisScale is the kind-tagged scale handed to render strategies. A fresh
// value is computed per render cycle and never mutated afterwards.
type AxisScale struct {
	Kind     ScaleKind
	Time     Scaler[time.Time]
	Number   Scaler[float64]
	Category Scaler[string]
	Ticks    TickStrategy
}

// Position maps one raw dimension value to its pixel coordinate on the
// axis. Categorical values land at the center of their band.
func (s AxisScale) Position(v any) (float64, bool) {
	switch s.Kind {
	case ScaleTemporal:
		t, ok := parseTemporal(stringValue(v))
		if !ok {
			return 0, false
		}
		return s.Time.Scale(t), true
	case ScaleCategorical:
		return s.Category.Scale(stringValue(v)) + s.Category.Space()/2, true
	default:
		f, ok := numericValue(v)
		if !ok {
			return 0, false
		}
		return s.Number.Scale(f), true
	}
}

// Band returns the band width of a categorical scale, zero otherwise.
func (s AxisScale) Band() float64 {
	if s.Kind != ScaleCategorical {
		return 0
	}
	return s.Category.Space()
}

var temporalPatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`), time.RFC3339},
	{regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), "01/02/2006"},
	{regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`), "1/2/06"},
	{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`), "2006/01/02"},
}

// IsTemporal reports whether a value looks like a date: it must match one
// of the recognized patterns and parse to a valid date. A partial match is
// treated as non-temporal.
func IsTemporal(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, ok = parseTemporal(s)
	return ok
}

func parseTemporal(s string) (time.Time, bool) {
	for _, p := range temporalPatterns {
		if !p.re.MatchString(s) {
			continue
		}
		t, err := time.Parse(p.layout, s)
		if err != nil {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

func stringValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ResolveScale classifies a dimension column and produces the matching
// axis scale over the given pixel range. Detection samples the first value
// and applies uniformly to the column; mixed-type columns are undefined
// behavior upstream.
func ResolveScale(values []any, axis AxisSettings, rg Range) AxisScale {
	if len(values) == 0 {
		return AxisScale{
			Kind:     ScaleCategorical,
			Category: StringScaler(nil, rg),
			Ticks:    categoryTicks(nil, rg.Len()),
		}
	}
	first := values[0]
	switch {
	case IsTemporal(first):
		return resolveTimeScale(values, rg)
	case isNumeric(first):
		return resolveNumberScale(values, axis, rg)
	default:
		return resolveCategoryScale(values, rg)
	}
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, int, int64:
		return true
	default:
		return false
	}
}

func resolveTimeScale(values []any, rg Range) AxisScale {
	var (
		min      time.Time
		max      time.Time
		set      bool
		distinct = make(map[time.Time]struct{})
	)
	for _, v := range values {
		t, ok := parseTemporal(stringValue(v))
		if !ok {
			continue
		}
		distinct[t] = struct{}{}
		if !set {
			min, max, set = t, t, true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	ticks := temporalTicks(rg.Len())
	if n := len(distinct); n > 0 && n < ticks.Count {
		ticks.Count = n
	}
	return AxisScale{
		Kind:  ScaleTemporal,
		Time:  TimeScaler(TimeDomain(min, max), rg),
		Ticks: ticks,
	}
}

func resolveNumberScale(values []any, axis AxisSettings, rg Range) AxisScale {
	var (
		min = math.Inf(1)
		max = math.Inf(-1)
	)
	for _, v := range values {
		f, ok := numericValue(v)
		if !ok {
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	if math.IsInf(min, 1) {
		min, max = 0, 0
	}
	if axis.CustomScale {
		if axis.MinValue != nil {
			min = *axis.MinValue
		}
		if axis.MaxValue != nil {
			max = *axis.MaxValue
		}
	}
	return AxisScale{
		Kind:   ScaleContinuous,
		Number: NumberScaler(NumberDomain(min, max), rg),
		Ticks:  continuousTicks(rg.Len()),
	}
}

func resolveCategoryScale(values []any, rg Range) AxisScale {
	var (
		seen  = make(map[string]struct{})
		order []string
	)
	for _, v := range values {
		s := stringValue(v)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		order = append(order, s)
	}
	return AxisScale{
		Kind:     ScaleCategorical,
		Category: StringScaler(order, rg),
		Ticks:    categoryTicks(order, rg.Len()),
	}
}

// ResolveValueScale builds the value-axis scale from an already computed
// [min,max] domain, reversed so larger values map to smaller pixel offsets.
func ResolveValueScale(domain [2]float64, rg Range) AxisScale {
	return AxisScale{
		Kind:   ScaleContinuous,
		Number: NumberScaler(NumberDomain(domain[1], domain[0]), rg),
		Ticks:  continuousTicks(rg.Len()),
	}
}
