package interchange

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotJSONFile is returned when an import path does not name a .json file.
var ErrNotJSONFile = errors.New("only .json files can be imported")

// ReadResult is the single value delivered by a read future.
type ReadResult struct {
	Name string
	Data []byte
	Err  error
}

// ReadAsync reads r to EOF on a new goroutine. The returned channel
// delivers exactly one result and is then closed.
func ReadAsync(name string, r io.Reader) <-chan ReadResult {
	ch := make(chan ReadResult, 1)
	go func() {
		defer close(ch)
		data, err := io.ReadAll(r)
		ch <- ReadResult{Name: name, Data: data, Err: err}
	}()
	return ch
}

// ReadFileAsync opens path and reads it asynchronously.
// Open failures and non-.json paths are delivered through the channel.
func ReadFileAsync(path string) <-chan ReadResult {
	if !IsJSONFile(path) {
		return resolved(ReadResult{Name: path, Err: ErrNotJSONFile})
	}

	f, err := os.Open(path)
	if err != nil {
		return resolved(ReadResult{Name: path, Err: err})
	}

	ch := make(chan ReadResult, 1)
	go func() {
		defer close(ch)
		defer f.Close()
		res := <-ReadAsync(path, f)
		ch <- res
	}()
	return ch
}

// IsJSONFile reports whether path has a .json extension.
func IsJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func resolved(res ReadResult) <-chan ReadResult {
	ch := make(chan ReadResult, 1)
	ch <- res
	close(ch)
	return ch
}
