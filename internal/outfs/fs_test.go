package outfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_DefaultWithDownloads(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	if err := os.MkdirAll(filepath.Join(tempDir, DownloadsDir), 0755); err != nil {
		t.Fatalf("Failed to create Downloads: %v", err)
	}

	out, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, DownloadsDir, AppDir)
	if out.Root() != expectedPath {
		t.Errorf("Expected root path %s, got %s", expectedPath, out.Root())
	}
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("Expected directory %s to be created", expectedPath)
	}
}

func TestNew_DefaultWithoutDownloads(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	out, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, ConfigDir, FallbackDir)
	if out.Root() != expectedPath {
		t.Errorf("Expected root path %s, got %s", expectedPath, out.Root())
	}
}

func TestNew_Absolute(t *testing.T) {
	customPath := filepath.Join(t.TempDir(), "cards")

	out, err := New(customPath)
	if err != nil {
		t.Fatalf("New(%s) failed: %v", customPath, err)
	}
	if out.Root() != customPath {
		t.Errorf("Expected root path %s, got %s", customPath, out.Root())
	}
	if _, err := os.Stat(customPath); os.IsNotExist(err) {
		t.Errorf("Expected directory %s to be created", customPath)
	}
}

func TestNew_Relative(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	out, err := New("mine")
	if err != nil {
		t.Fatalf("New(mine) failed: %v", err)
	}

	expectedPath := filepath.Join(tempDir, ConfigDir, "mine")
	if out.Root() != expectedPath {
		t.Errorf("Expected root path %s, got %s", expectedPath, out.Root())
	}
}

func TestWriteFile(t *testing.T) {
	out := NewWithRoot(t.TempDir())

	path, err := out.WriteFile("quote-1.png", []byte("png"))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if path != out.Path("quote-1.png") {
		t.Errorf("Expected path %s, got %s", out.Path("quote-1.png"), path)
	}

	data, err := fs.ReadFile(out, "quote-1.png")
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("Expected %q, got %q", "png", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}
}

func TestWriteFile_Overwrite(t *testing.T) {
	out := NewWithRoot(t.TempDir())

	if _, err := out.WriteFile("quotes_export.json", []byte("[1]")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := out.WriteFile("quotes_export.json", []byte("[2]")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, _ := fs.ReadFile(out, "quotes_export.json")
	if string(data) != "[2]" {
		t.Errorf("Expected overwritten content, got %q", data)
	}

	// No temp files left behind
	entries, _ := os.ReadDir(out.Root())
	if len(entries) != 1 {
		t.Errorf("Expected 1 file in output dir, got %d", len(entries))
	}
}

func TestWriteFile_Nested(t *testing.T) {
	out := NewWithRoot(t.TempDir())

	if _, err := out.WriteFile("cards/2024/quote-a.png", []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out.Root(), "cards", "2024", "quote-a.png")); err != nil {
		t.Errorf("Expected nested file to exist: %v", err)
	}
}

func TestWriteFile_InvalidPath(t *testing.T) {
	out := NewWithRoot(t.TempDir())

	for _, name := range []string{"../escape.png", "/abs.png", "", ".", "a//b"} {
		_, err := out.WriteFile(name, []byte("x"))
		if !errors.Is(err, fs.ErrInvalid) {
			t.Errorf("WriteFile(%q): expected fs.ErrInvalid, got %v", name, err)
		}
	}
}

func TestConfigPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	path, err := ConfigPath("quotegen.db")
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if path != filepath.Join(tempDir, ConfigDir, "quotegen.db") {
		t.Errorf("Unexpected config path %s", path)
	}
}
