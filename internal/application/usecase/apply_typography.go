package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

const (
	// StyleElementID identifies the managed style element on a page.
	StyleElementID = "includs-typography-styles"

	cssVarFontScale  = "--includs-font-scale"
	cssVarLineHeight = "--includs-line-height"

	lineHeightSelector = "body, p, li, td, th, dd, dt, span, div, article, section, main"
)

// BuildTypographyCSS renders the managed stylesheet for s. At default
// settings it returns an empty string so the page is left untouched.
// Root font-size and line-height rules are only emitted for the fields
// that differ from their defaults.
func BuildTypographyCSS(s entity.TypographySettings) string {
	fontChanged := s.FontScaleChanged()
	lineChanged := s.LineHeightChanged()
	if !fontChanged && !lineChanged {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, ":root { %s: %s; %s: %s; }\n",
		cssVarFontScale, formatCSSNumber(s.FontScale),
		cssVarLineHeight, formatCSSNumber(s.LineHeight))

	if fontChanged {
		fmt.Fprintf(&b, "html { font-size: calc(100%% * var(%s)) !important; }\n", cssVarFontScale)
	}
	if lineChanged {
		fmt.Fprintf(&b, "%s { line-height: var(%s) !important; }\n", lineHeightSelector, cssVarLineHeight)
	}
	return b.String()
}

func formatCSSNumber(v float64) string {
	return strconv.FormatFloat(entity.RoundToTenth(v), 'f', -1, 64)
}

// ApplyTypographyUseCase keeps the page stylesheet in sync with settings.
type ApplyTypographyUseCase struct {
	sheet port.StyleSheet
}

func NewApplyTypographyUseCase(sheet port.StyleSheet) *ApplyTypographyUseCase {
	return &ApplyTypographyUseCase{sheet: sheet}
}

// ApplyToPage writes the stylesheet for s. When the sheet already holds
// the same text nothing is written and changed is false.
func (uc *ApplyTypographyUseCase) ApplyToPage(ctx context.Context, s entity.TypographySettings) (string, bool, error) {
	log := logging.FromContext(ctx)
	css := BuildTypographyCSS(s)

	current, err := uc.sheet.Text(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("could not read current stylesheet, rewriting")
	} else if current == css {
		log.Trace().Msg("stylesheet already up to date")
		return css, false, nil
	}

	if err := uc.sheet.SetText(ctx, css); err != nil {
		return css, false, fmt.Errorf("failed to apply typography: %w", err)
	}

	log.Debug().
		Float64("font_scale", s.FontScale).
		Float64("line_height", s.LineHeight).
		Bool("empty", css == "").
		Msg("typography applied")
	return css, true, nil
}
