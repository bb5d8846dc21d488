package notify

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
)

type Clipboard interface {
	Available() bool
	WriteText(text string) error
}

// SystemClipboard uses the desktop clipboard (xclip, xsel, pbcopy, ...).
type SystemClipboard struct{}

func (SystemClipboard) Available() bool { return !clipboard.Unsupported }

func (SystemClipboard) WriteText(text string) error { return clipboard.WriteAll(text) }

// OSC52Clipboard asks the terminal to set the clipboard through an escape
// sequence. It works over SSH where no clipboard utility exists.
type OSC52Clipboard struct {
	W io.Writer
}

func (c OSC52Clipboard) Available() bool { return c.W != nil }

func (c OSC52Clipboard) WriteText(text string) error {
	if c.W == nil {
		return errors.New("no terminal")
	}
	_, err := io.WriteString(c.W, "\x1b]52;c;"+base64.StdEncoding.EncodeToString([]byte(text))+"\a")
	return err
}

// CopyText uses primary when it is available and fallback otherwise. It
// reports success and never panics.
func CopyText(value string, primary, fallback Clipboard) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("clipboard copy panicked", "panic", r)
			ok = false
		}
	}()

	cb := fallback
	if primary != nil && primary.Available() {
		cb = primary
	}
	if cb == nil {
		return false
	}
	if err := cb.WriteText(value); err != nil {
		slog.Warn("clipboard copy failed", "error", err)
		return false
	}
	return true
}
