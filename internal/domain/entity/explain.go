package entity

import "fmt"

// TextSource says where the text to explain came from.
type TextSource string

const (
	SourceSelection TextSource = "selection"
	SourceParagraph TextSource = "paragraph"
	SourceFile      TextSource = "file"
	SourceStdin     TextSource = "stdin"
	SourceArgs      TextSource = "args"
	// SourceInput is text typed or pasted into the toolbar prompt.
	SourceInput     TextSource = "input"
)

const (
	ExplainMinChars = 10
	ExplainMaxChars = 5000
)

// ExplainRequest is the ephemeral input to the explain workflow.
type ExplainRequest struct {
	Text   string
	Source TextSource
}

// ExplainResult holds either an explanation or an error, never both.
type ExplainResult struct {
	Explanation string        `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Source      TextSource    `json:"source,omitempty" yaml:"source,omitempty"`
	Err         *GatewayError `json:"-" yaml:"-"`
}

// OK reports whether the call succeeded.
func (r ExplainResult) OK() bool {
	return r.Err == nil
}

// KeyTestResult is the outcome of a credential test call.
type KeyTestResult struct {
	Provider Provider      `json:"provider" yaml:"provider"`
	Valid    bool          `json:"valid" yaml:"valid"`
	Voices   []Voice       `json:"voices,omitempty" yaml:"voices,omitempty"`
	Err      *GatewayError `json:"-" yaml:"-"`
}

// Message returns the status line shown to the user.
func (r KeyTestResult) Message() string {
	if r.Valid {
		if len(r.Voices) > 0 {
			return fmt.Sprintf("%s key is valid (%d voices)", r.Provider.DisplayName(), len(r.Voices))
		}
		return r.Provider.DisplayName() + " key is valid"
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return r.Provider.DisplayName() + " key is invalid"
}
