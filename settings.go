package vizr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MissingValuePolicy decides how line strategies draw a missing measure
// value: break the path (gap) or plot a neutral mark at the zero baseline.
type MissingValuePolicy string

const (
	MissingGap  MissingValuePolicy = "gap"
	MissingZero MissingValuePolicy = "zero"
)

// VisualizationSettings is the per-render configuration handed over by the
// host. The engine only reads it.
type VisualizationSettings struct {
	Dimensions    DimensionSettings   `yaml:"dimensions" json:"dimensions"`
	Colors        ColorSettings       `yaml:"colors" json:"colors"`
	Legends       LegendSettings      `yaml:"legends" json:"legends"`
	Tooltips      TooltipSettings     `yaml:"tooltips" json:"tooltips"`
	Animations    AnimationSettings   `yaml:"animations" json:"animations"`
	Axes          AxesSettings        `yaml:"axes" json:"axes"`
	Interactions  InteractionSettings `yaml:"interactions" json:"interactions"`
	MissingValues MissingValuePolicy  `yaml:"missingValues" json:"missingValues"`
}

type DimensionSettings struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

type ColorSettings struct {
	Palette Palette `yaml:"palette" json:"palette"`
}

type LegendSettings struct {
	Show     bool   `yaml:"show" json:"show"`
	Position string `yaml:"position" json:"position"`
}

type TooltipSettings struct {
	Show bool `yaml:"show" json:"show"`
}

type AnimationSettings struct {
	// Enabled is accepted for host compatibility; the headless engine
	// renders final frames only.
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type AxesSettings struct {
	X AxisSettings `yaml:"x" json:"x"`
	Y AxisSettings `yaml:"y" json:"y"`
}

type AxisSettings struct {
	Sort        string   `yaml:"sort" json:"sort"`
	CustomScale bool     `yaml:"customScale" json:"customScale"`
	MinValue    *float64 `yaml:"minValue" json:"minValue"`
	MaxValue    *float64 `yaml:"maxValue" json:"maxValue"`
}

type InteractionSettings struct {
	Brush BrushSettings `yaml:"brush" json:"brush"`
}

type BrushSettings struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// DefaultSettings returns the settings used when the host omits a field or
// the whole object.
func DefaultSettings() VisualizationSettings {
	return VisualizationSettings{
		Dimensions: DimensionSettings{
			Width:  800,
			Height: 500,
		},
		Colors: ColorSettings{
			Palette: Dashboard10,
		},
		Legends: LegendSettings{
			Show:     true,
			Position: "bottom",
		},
		Tooltips: TooltipSettings{
			Show: true,
		},
		Interactions: InteractionSettings{
			Brush: BrushSettings{Enabled: true},
		},
		MissingValues: MissingGap,
	}
}

// Normalize fills zero-valued fields with defaults so callers can pass a
// partially populated settings object.
func (s VisualizationSettings) Normalize() VisualizationSettings {
	def := DefaultSettings()
	if s.Dimensions.Width <= 0 {
		s.Dimensions.Width = def.Dimensions.Width
	}
	if s.Dimensions.Height <= 0 {
		s.Dimensions.Height = def.Dimensions.Height
	}
	if len(s.Colors.Palette) == 0 {
		s.Colors.Palette = def.Colors.Palette
	}
	if s.Legends.Position == "" {
		s.Legends.Position = def.Legends.Position
	}
	if s.MissingValues == "" {
		s.MissingValues = def.MissingValues
	}
	return s
}

func (s VisualizationSettings) Validate() error {
	if s.Dimensions.Width < 0 || s.Dimensions.Height < 0 {
		return fmt.Errorf("settings: negative dimensions %gx%g", s.Dimensions.Width, s.Dimensions.Height)
	}
	switch s.MissingValues {
	case "", MissingGap, MissingZero:
	default:
		return fmt.Errorf("settings: unknown missing-value policy %q", s.MissingValues)
	}
	if s.Axes.Y.CustomScale && s.Axes.Y.MinValue != nil && s.Axes.Y.MaxValue != nil {
		if *s.Axes.Y.MinValue > *s.Axes.Y.MaxValue {
			return fmt.Errorf("settings: y-axis min %g above max %g", *s.Axes.Y.MinValue, *s.Axes.Y.MaxValue)
		}
	}
	return nil
}

// LoadSettings reads a YAML settings file, normalizes, and validates it.
func LoadSettings(path string) (VisualizationSettings, error) {
	var settings VisualizationSettings
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("settings: %w", err)
	}
	settings = settings.Normalize()
	return settings, settings.Validate()
}
