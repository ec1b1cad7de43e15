// Package clipboard copies explanations to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

// ErrUnavailable is returned when no clipboard backend (wl-clipboard,
// xclip, xsel) is installed.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	unsupported bool
	write       func(string) error
	read        func() (string, error)
}

var _ port.Clipboard = (*Adapter)(nil)

// New returns an adapter over the system clipboard.
func New() *Adapter {
	return &Adapter{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		read:        clipboard.ReadAll,
	}
}

// Available reports whether a clipboard backend was found.
func (a *Adapter) Available() bool {
	return !a.unsupported
}

// NewWithFuncs returns an adapter over custom read and write functions.
func NewWithFuncs(write func(string) error, read func() (string, error)) *Adapter {
	return &Adapter{write: write, read: read}
}

func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.unsupported {
		log.Error().Err(ErrUnavailable).Msg("clipboard write failed")
		return ErrUnavailable
	}
	if err := a.write(text); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	log.Debug().Int("len", len(text)).Msg("clipboard write success")
	return nil
}

func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	if a.unsupported {
		return "", ErrUnavailable
	}
	text, err := a.read()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("clipboard read failed")
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
