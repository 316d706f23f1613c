// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when there is nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// swapped out in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}

	if unsupported() {
		return fmt.Errorf("clipboard not supported on %s: install xclip, xsel or wl-clipboard", runtime.GOOS)
	}

	if err := writeAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	return nil
}
