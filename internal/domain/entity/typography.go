package entity

import (
	"fmt"
	"math"
	"strconv"
)

// TypographyField names one adjustable typography parameter.
type TypographyField string

const (
	FieldFontScale  TypographyField = "fontScale"
	FieldLineHeight TypographyField = "lineHeight"
)

// ParseTypographyField accepts the storage name or a short CLI alias.
func ParseTypographyField(s string) (TypographyField, error) {
	switch s {
	case "fontScale", "font", "font-scale", "font_scale":
		return FieldFontScale, nil
	case "lineHeight", "line", "line-height", "line_height":
		return FieldLineHeight, nil
	}
	return "", fmt.Errorf("unknown typography field %q", s)
}

// Direction is the sign of a single adjustment step.
type Direction int

const (
	Decrease Direction = -1
	Increase Direction = 1
)

func (d Direction) String() string {
	if d == Increase {
		return "increase"
	}
	return "decrease"
}

// Bounds describes the legal range of a typography field.
type Bounds struct {
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

var (
	FontScaleBounds  = Bounds{Min: 0.8, Max: 2.0, Step: 0.1, Default: 1.0}
	LineHeightBounds = Bounds{Min: 1.0, Max: 2.5, Step: 0.1, Default: 1.5}
)

// defaultTolerance is how close a value must be to its default to count as unchanged.
const defaultTolerance = 0.01

// BoundsFor returns the range for field.
func BoundsFor(field TypographyField) Bounds {
	if field == FieldLineHeight {
		return LineHeightBounds
	}
	return FontScaleBounds
}

// RoundToTenth rounds half away from zero to one decimal place.
func RoundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Clamp constrains v to [Min, Max] and rounds it.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	return RoundToTenth(math.Max(b.Min, math.Min(b.Max, v)))
}

// Next returns the value one step away from current in dir.
// At a bound it returns the bound itself.
func (b Bounds) Next(current float64, dir Direction) float64 {
	return b.Clamp(current + float64(dir)*b.Step)
}

// IsDefault reports whether v is within tolerance of the default.
func (b Bounds) IsDefault(v float64) bool {
	return math.Abs(v-b.Default) <= defaultTolerance
}

// TypographySettings are the two values applied to a page.
type TypographySettings struct {
	FontScale  float64 `json:"fontScale" yaml:"fontScale"`
	LineHeight float64 `json:"lineHeight" yaml:"lineHeight"`
}

// DefaultTypography returns the hardcoded fallback settings.
func DefaultTypography() TypographySettings {
	return TypographySettings{
		FontScale:  FontScaleBounds.Default,
		LineHeight: LineHeightBounds.Default,
	}
}

// Normalized clamps and rounds both fields.
func (s TypographySettings) Normalized() TypographySettings {
	return TypographySettings{
		FontScale:  FontScaleBounds.Clamp(s.FontScale),
		LineHeight: LineHeightBounds.Clamp(s.LineHeight),
	}
}

// Get returns the value of field.
func (s TypographySettings) Get(field TypographyField) float64 {
	if field == FieldLineHeight {
		return s.LineHeight
	}
	return s.FontScale
}

// With returns a copy with field set to v.
func (s TypographySettings) With(field TypographyField, v float64) TypographySettings {
	if field == FieldLineHeight {
		s.LineHeight = v
	} else {
		s.FontScale = v
	}
	return s
}

// IsDefault reports whether both fields sit at their defaults.
func (s TypographySettings) IsDefault() bool {
	return FontScaleBounds.IsDefault(s.FontScale) && LineHeightBounds.IsDefault(s.LineHeight)
}

// FontScaleChanged reports whether the font scale differs from its default.
func (s TypographySettings) FontScaleChanged() bool {
	return !FontScaleBounds.IsDefault(s.FontScale)
}

// LineHeightChanged reports whether the line height differs from its default.
func (s TypographySettings) LineHeightChanged() bool {
	return !LineHeightBounds.IsDefault(s.LineHeight)
}

// FontScalePercent renders the font scale the way the toolbar shows it, e.g. "120%".
func (s TypographySettings) FontScalePercent() string {
	return strconv.Itoa(int(math.Round(s.FontScale*100))) + "%"
}

// LineHeightLabel renders the line height with one decimal, e.g. "1.5".
func (s TypographySettings) LineHeightLabel() string {
	return strconv.FormatFloat(s.LineHeight, 'f', 1, 64)
}
