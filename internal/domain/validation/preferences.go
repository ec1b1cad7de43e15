package validation

import (
	"fmt"
	"strings"

	"github.com/bnema/includs/internal/domain/entity"
)

// Preferences returns one message per invalid field.
func Preferences(p entity.Preferences) []string {
	var errs []string

	errs = append(errs, inBounds("fontScale", p.FontScale, entity.FontScaleBounds)...)
	errs = append(errs, inBounds("lineHeight", p.LineHeight, entity.LineHeightBounds)...)

	switch p.TTSSpeed {
	case entity.TTSSlow, entity.TTSNormal, entity.TTSFast:
	default:
		errs = append(errs, fmt.Sprintf("ttsSpeed must be one of slow, normal, fast (got %q)", p.TTSSpeed))
	}

	switch p.ToolbarPosition {
	case entity.ToolbarLeft, entity.ToolbarRight:
	default:
		errs = append(errs, fmt.Sprintf("toolbarPosition must be left or right (got %q)", p.ToolbarPosition))
	}

	if strings.TrimSpace(p.ExplainMode) == "" {
		errs = append(errs, "explainMode cannot be empty")
	}
	if len(p.OpenAIPrompt) > 4000 {
		errs = append(errs, "openaiPrompt is too long")
	}

	return errs
}

func inBounds(field string, v float64, b entity.Bounds) []string {
	if v < b.Min || v > b.Max {
		return []string{fmt.Sprintf("%s must be between %.1f and %.1f (got %g)", field, b.Min, b.Max, v)}
	}
	return nil
}
