// Package premium tracks the one-way premium unlock.
package premium

import (
	"fmt"
	"log/slog"

	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/store"
)

// UnlockPrompt is the question asked before unlocking.
const UnlockPrompt = "Unlock premium (removes the watermark)?"

// Confirmer answers a yes/no prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Flag is the premium state backed by a gateway entry.
type Flag struct {
	gw  store.Gateway
	log *slog.Logger
}

// New creates a new Flag over gw.
func New(gw store.Gateway, logger *slog.Logger) *Flag {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Flag{gw: gw, log: logger}
}

// Unlocked reports whether the stored value is "1".
// Any gateway failure reads as locked.
func (f *Flag) Unlocked() bool {
	value, ok, err := f.gw.Load(store.PremiumKey)
	if err != nil {
		f.log.Warn("failed to read premium flag", "error", err)
		return false
	}
	return ok && value == "1"
}

// Unlock asks confirm and, if accepted, persists the flag.
// It reports whether premium is unlocked afterwards.
func (f *Flag) Unlock(confirm Confirmer) (bool, error) {
	if f.Unlocked() {
		return true, nil
	}
	if confirm == nil || !confirm.Confirm(UnlockPrompt) {
		return false, nil
	}

	if err := f.gw.Save(store.PremiumKey, "1"); err != nil {
		return false, fmt.Errorf("failed to save premium flag: %w", err)
	}

	f.log.Info("premium unlocked")
	return true, nil
}
