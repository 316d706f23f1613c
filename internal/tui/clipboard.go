package tui

import "github.com/zarlcorp/zpass/internal/clipboard"

// copyFunc writes text to the clipboard.
type copyFunc func(text string) error

// copyToClipboard is the production clipboard sink.
var copyToClipboard copyFunc = clipboard.Copy
