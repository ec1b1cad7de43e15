// Package page implements port.StyleSheet for the surfaces typography is
// applied to: an in-process buffer, a parsed HTML document and a live
// browser page.
package page

import (
	"context"
	"sync"
)

// StyleElementID identifies the managed style element.
const StyleElementID = "includs-typography-styles"

// MemoryStyleSheet holds the stylesheet text in memory. The toolbar uses it
// to preview CSS without a page.
type MemoryStyleSheet struct {
	mu     sync.Mutex
	text   string
	writes int
}

func NewMemoryStyleSheet() *MemoryStyleSheet {
	return &MemoryStyleSheet{}
}

func (m *MemoryStyleSheet) Text(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryStyleSheet) SetText(_ context.Context, css string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = css
	m.writes++
	return nil
}

// Writes counts SetText calls.
func (m *MemoryStyleSheet) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
