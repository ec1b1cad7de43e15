package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/includs/internal/domain/entity"
)

// ExplainText trims text and checks its length in characters.
// It returns the trimmed text or a user-facing message.
func ExplainText(text string) (string, string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", "No text provided"
	}

	n := utf8.RuneCountInString(text)
	if n < entity.ExplainMinChars {
		return "", "Text is too short. Please select more text."
	}
	if n > entity.ExplainMaxChars {
		return "", fmt.Sprintf("Text is too long (%d chars). Maximum is %d characters.", n, entity.ExplainMaxChars)
	}
	return text, ""
}
