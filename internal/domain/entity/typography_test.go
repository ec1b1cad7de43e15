package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds_NextStaysInRange(t *testing.T) {
	v := FontScaleBounds.Default
	for i := 0; i < 30; i++ {
		v = FontScaleBounds.Next(v, Increase)
		assert.LessOrEqual(t, v, FontScaleBounds.Max)
	}
	assert.Equal(t, 2.0, v)

	for i := 0; i < 30; i++ {
		v = FontScaleBounds.Next(v, Decrease)
		assert.GreaterOrEqual(t, v, FontScaleBounds.Min)
	}
	assert.Equal(t, 0.8, v)
}

func TestBounds_NextRoundsAwayDrift(t *testing.T) {
	v := 1.0
	for i := 0; i < 3; i++ {
		v = FontScaleBounds.Next(v, Increase)
	}
	assert.Equal(t, 1.3, v)

	v = LineHeightBounds.Next(1.5, Decrease)
	assert.Equal(t, 1.4, v)
}

func TestBounds_ClampNaN(t *testing.T) {
	assert.Equal(t, 1.5, LineHeightBounds.Clamp(nanValue()))
}

func TestTypographySettings_IsDefault(t *testing.T) {
	assert.True(t, DefaultTypography().IsDefault())
	assert.True(t, TypographySettings{FontScale: 1.005, LineHeight: 1.495}.IsDefault())
	assert.False(t, TypographySettings{FontScale: 1.2, LineHeight: 1.5}.IsDefault())

	s := TypographySettings{FontScale: 1.0, LineHeight: 1.8}
	assert.False(t, s.FontScaleChanged())
	assert.True(t, s.LineHeightChanged())
}

func TestTypographySettings_DisplayValues(t *testing.T) {
	s := TypographySettings{FontScale: 1.2, LineHeight: 2}
	assert.Equal(t, "120%", s.FontScalePercent())
	assert.Equal(t, "2.0", s.LineHeightLabel())
}

func TestParseTypographyField(t *testing.T) {
	f, err := ParseTypographyField("font")
	require.NoError(t, err)
	assert.Equal(t, FieldFontScale, f)

	f, err = ParseTypographyField("line-height")
	require.NoError(t, err)
	assert.Equal(t, FieldLineHeight, f)

	_, err = ParseTypographyField("kerning")
	assert.Error(t, err)
}

func nanValue() float64 {
	zero := 0.0
	return zero / zero
}
