package usecase

import (
	"encoding/json"
	"fmt"
)

// Synced scope keys.
const (
	KeyEnabledByDefault = "enabledByDefault"
	KeyFontScale        = "fontScale"
	KeyLineHeight       = "lineHeight"
	KeyTTSSpeed         = "ttsSpeed"
	KeyToolbarPosition  = "toolbarPosition"
	KeyExplainMode      = "explainMode"
	KeyHelpTipsEnabled  = "helpTipsEnabled"
	KeyOpenAIPrompt     = "openaiPrompt"
	KeyVersion          = "_version"
)

// Local scope keys.
const (
	KeyOpenAIAPIKey       = "openaiApiKey"
	KeyOpenAIEndpoint     = "openaiEndpoint"
	KeyOpenAIModel        = "openaiModel"
	KeyOpenAIKeyValid     = "openaiKeyValid"
	KeyElevenLabsAPIKey   = "elevenLabsApiKey"
	KeyElevenLabsVoiceID  = "elevenLabsVoiceId"
	KeyElevenLabsKeyValid = "elevenLabsKeyValid"
	KeyElevenLabsVoices   = "elevenLabsVoices"
)

// decodeKey unmarshals values[key] into dst. It reports false when the key
// is absent or JSON null.
func decodeKey(values map[string]json.RawMessage, key string, dst any) (bool, error) {
	raw, ok := values[key]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// stringOr returns the string stored at key or fallback.
func stringOr(values map[string]json.RawMessage, key, fallback string) string {
	var s string
	if ok, err := decodeKey(values, key, &s); !ok || err != nil || s == "" {
		return fallback
	}
	return s
}

// boolOr returns the bool stored at key or fallback.
func boolOr(values map[string]json.RawMessage, key string, fallback bool) bool {
	var b bool
	if ok, err := decodeKey(values, key, &b); !ok || err != nil {
		return fallback
	}
	return b
}
