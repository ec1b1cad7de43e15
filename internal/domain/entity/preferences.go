package entity

// TTSSpeed is the stored speech rate. No audio is produced from it.
type TTSSpeed string

const (
	TTSSlow   TTSSpeed = "slow"
	TTSNormal TTSSpeed = "normal"
	TTSFast   TTSSpeed = "fast"
)

// ToolbarPosition is the screen edge the toolbar docks to.
type ToolbarPosition string

const (
	ToolbarLeft  ToolbarPosition = "left"
	ToolbarRight ToolbarPosition = "right"
)

// PreferencesVersion is the schema version written on install.
const PreferencesVersion = 1

// DefaultExplainPrompt is the system prompt sent with every explain request
// unless the user stored their own.
const DefaultExplainPrompt = `You are a helpful assistant that explains text in simple, clear language.
When given text, provide a brief, easy-to-understand explanation or simplification.
- Use simple words and short sentences
- Avoid jargon unless you explain it
- Be concise but thorough
- If the text is already simple, just provide a brief summary`

// Preferences is the synced, account-wide settings record.
type Preferences struct {
	EnabledByDefault bool            `json:"enabledByDefault" yaml:"enabledByDefault"`
	FontScale        float64         `json:"fontScale" yaml:"fontScale"`
	LineHeight       float64         `json:"lineHeight" yaml:"lineHeight"`
	TTSSpeed         TTSSpeed        `json:"ttsSpeed" yaml:"ttsSpeed"`
	ToolbarPosition  ToolbarPosition `json:"toolbarPosition" yaml:"toolbarPosition"`
	ExplainMode      string          `json:"explainMode" yaml:"explainMode"`
	HelpTipsEnabled  bool            `json:"helpTipsEnabled" yaml:"helpTipsEnabled"`
	OpenAIPrompt     string          `json:"openaiPrompt,omitempty" yaml:"openaiPrompt,omitempty"`
	Version          int             `json:"_version" yaml:"_version"`
}

// DefaultPreferences returns the values written on first install.
func DefaultPreferences() Preferences {
	d := DefaultTypography()
	return Preferences{
		EnabledByDefault: true,
		FontScale:        d.FontScale,
		LineHeight:       d.LineHeight,
		TTSSpeed:         TTSNormal,
		ToolbarPosition:  ToolbarRight,
		ExplainMode:      "simple",
		HelpTipsEnabled:  true,
		Version:          PreferencesVersion,
	}
}

// Typography returns the global typography layer.
func (p Preferences) Typography() TypographySettings {
	return TypographySettings{FontScale: p.FontScale, LineHeight: p.LineHeight}
}

// Prompt returns the stored system prompt or the default.
func (p Preferences) Prompt() string {
	if p.OpenAIPrompt == "" {
		return DefaultExplainPrompt
	}
	return p.OpenAIPrompt
}
