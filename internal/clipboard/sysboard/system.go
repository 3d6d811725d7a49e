// Package sysboard implements the system clipboard.
// It uses golang.design/x/clipboard when the platform clipboard can be
// initialized, and falls back to pbcopy or xclip/xsel otherwise.
package sysboard

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"

	designclip "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func native() bool {
	initOnce.Do(func() {
		initErr = designclip.Init()
	})
	return initErr == nil
}

// SystemClipboard implements Clipboard for the host system
type SystemClipboard struct{}

// New creates a new SystemClipboard instance
func New() *SystemClipboard {
	return &SystemClipboard{}
}

// IsSupported returns true if clipboard operations are supported on this system
func (s *SystemClipboard) IsSupported() bool {
	if native() {
		return true
	}
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	default:
		return false
	}
}

// Write replaces the clipboard contents with everything read from r.
func (s *SystemClipboard) Write(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if native() {
		designclip.Write(designclip.FmtText, data)
		return nil
	}

	var commands [][]string
	switch runtime.GOOS {
	case "darwin":
		commands = [][]string{{"pbcopy"}}
	case "linux":
		commands = [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	default:
		return fmt.Errorf("clipboard operations not supported on %s", runtime.GOOS)
	}

	var lastErr error
	for _, c := range commands {
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = bytes.NewReader(data)
		if lastErr = cmd.Run(); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to write clipboard: %w", lastErr)
}
