package vizr

import (
	"fmt"
	"math"
	"strconv"
)

type Palette []string

var (
	Category10  Palette
	Tableau10   Palette
	Dashboard10 Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	Dashboard10 = splitColorString("4f46e510b981f59e0bef44448b5cf606b6d4ec489984cc16f973166366f1")
}

func (p Palette) At(i int) string {
	if len(p) == 0 {
		return neutralColor
	}
	return p[i%len(p)]
}

// neutralColor is the fill used for marks standing in for missing values.
const neutralColor = "#9ca3af"

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// InterpolateColor blends two hex colors; t is clamped to [0,1]. Used by
// the heatmap cell fill and its gradient legend strip.
func InterpolateColor(from, to string, t float64) string {
	t = math.Max(0, math.Min(1, t))
	fr, fg, fb := splitRGB(from)
	tr, tg, tb := splitRGB(to)
	var (
		r = fr + (tr-fr)*t
		g = fg + (tg-fg)*t
		b = fb + (tb-fb)*t
	)
	return fmt.Sprintf("#%02x%02x%02x", int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

func splitRGB(hex string) (float64, float64, float64) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return float64(r), float64(g), float64(b)
}
