package port

import "context"

// StyleSheet is the single managed style element on a page.
type StyleSheet interface {
	// Text returns the current contents, empty if the element is absent.
	Text(ctx context.Context) (string, error)

	// SetText replaces the contents, creating the element if needed.
	SetText(ctx context.Context, css string) error
}
