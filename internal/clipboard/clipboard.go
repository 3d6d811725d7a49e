// Package clipboard defines the clipboard capability used to copy quotes.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yiblet/quotegen/internal/quote"
)

// ErrUnsupported is returned when no clipboard backend is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Clipboard accepts plain text.
type Clipboard interface {
	Write(r io.Reader) error
	IsSupported() bool
}

// CopyQuote writes q as `"text" — #category`.
func CopyQuote(cb Clipboard, q quote.Quote) error {
	if !cb.IsSupported() {
		return ErrUnsupported
	}
	if err := cb.Write(strings.NewReader(q.ClipboardText())); err != nil {
		return fmt.Errorf("failed to copy quote: %w", err)
	}
	return nil
}
