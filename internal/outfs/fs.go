// Package outfs writes exported files under the configured output directory.
package outfs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	ConfigDir      = ".config/quotegen"
	DownloadsDir   = "Downloads"
	AppDir         = "quotegen"
	FallbackDir    = "exports"
	filePerm       = 0644
	dirPerm        = 0755
	tempFilePrefix = ".quotegen-"
)

// OutFS is a filesystem rooted at the output directory
type OutFS struct {
	root string
}

// ConfigPath returns ~/.config/quotegen joined with elem.
func ConfigPath(elem ...string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{homeDir, ConfigDir}, elem...)...), nil
}

// DefaultRoot returns ~/Downloads/quotegen when a Downloads folder exists,
// otherwise ~/.config/quotegen/exports.
func DefaultRoot() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	downloads := filepath.Join(homeDir, DownloadsDir)
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return filepath.Join(downloads, AppDir), nil
	}
	return filepath.Join(homeDir, ConfigDir, FallbackDir), nil
}

// New creates an OutFS for outputDir.
// Empty uses DefaultRoot, absolute paths are used as-is and relative paths
// are resolved against ~/.config/quotegen.
func New(outputDir string) (*OutFS, error) {
	var root string
	switch {
	case outputDir == "":
		r, err := DefaultRoot()
		if err != nil {
			return nil, err
		}
		root = r
	case filepath.IsAbs(outputDir):
		root = outputDir
	default:
		r, err := ConfigPath(outputDir)
		if err != nil {
			return nil, err
		}
		root = r
	}

	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &OutFS{root: root}, nil
}

// NewWithRoot creates an OutFS with a custom root (for testing)
func NewWithRoot(root string) *OutFS {
	return &OutFS{root: root}
}

// Open implements fs.FS
func (o *OutFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return os.Open(filepath.Join(o.root, name))
}

// Path returns the absolute location of name.
func (o *OutFS) Path(name string) string {
	return filepath.Join(o.root, filepath.FromSlash(name))
}

// WriteFile writes data to name through a temp file and rename, so readers
// see either the old file or the complete new one.
func (o *OutFS) WriteFile(name string, data []byte) (string, error) {
	if !fs.ValidPath(name) || name == "." {
		return "", &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}

	fullPath := o.Path(name)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	return fullPath, nil
}

// Root returns the root directory path
func (o *OutFS) Root() string {
	return o.root
}
