package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/includs/internal/domain/entity"
)

func TestExplainText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantMsg string
	}{
		{"empty", "", "", "No text provided"},
		{"whitespace only", "  \n\t ", "", "No text provided"},
		{"too short", "hi", "", "Text is too short. Please select more text."},
		{"exactly ten after trim", "  0123456789  ", "0123456789", ""},
		{"multibyte counted as characters", strings.Repeat("é", 10), strings.Repeat("é", 10), ""},
		{"max length", strings.Repeat("a", 5000), strings.Repeat("a", 5000), ""},
		{"over max cites length", strings.Repeat("a", 5001), "", "Text is too long (5001 chars). Maximum is 5000 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := ExplainText(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestPreferences(t *testing.T) {
	assert.Empty(t, Preferences(entity.DefaultPreferences()))

	p := entity.DefaultPreferences()
	p.FontScale = 3
	p.TTSSpeed = "warp"
	p.ToolbarPosition = "top"
	p.ExplainMode = " "

	errs := Preferences(p)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs[0], "fontScale")
}

func TestValidatePaletteHex(t *testing.T) {
	assert.True(t, IsHexColor("#4ade80"))
	assert.False(t, IsHexColor("4ade80"))
	assert.False(t, IsHexColor("#fff"))

	errs := ValidatePaletteHex("appearance.palette",
		NamedColor{Name: "text", Value: "#ffffff"},
		NamedColor{Name: "accent", Value: "green"},
	)
	assert.Equal(t, []string{"appearance.palette.accent must be a hex color like #RRGGBB"}, errs)
}
