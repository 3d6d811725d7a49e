// Package interchange converts quote lists to and from the JSON exchange
// format and provides the asynchronous file read used by import.
package interchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yiblet/quotegen/internal/quote"
)

// ExportFilename is the file name written by export.
const ExportFilename = "quotes_export.json"

// ErrFormat is returned when the decoded JSON is not an array.
var ErrFormat = errors.New("file format not supported")

// ReadError reports that an import source could not be read or parsed.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read file: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Item is one decoded import entry before normalization.
type Item struct {
	Text     string
	Category string
}

// ImageFilename returns the download name of a rendered quote image.
func ImageFilename(id string) string {
	return "quote-" + id + ".png"
}

// Encode serializes quotes, in order and with ids, as a compact JSON array.
func Encode(quotes []quote.Quote) ([]byte, error) {
	if quotes == nil {
		quotes = []quote.Quote{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(quotes); err != nil {
		return nil, fmt.Errorf("failed to encode quotes: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses an import payload.
// Elements may be any JSON value; objects contribute their "text" field,
// falling back to the legacy "quote" field, and their "category" field.
func Decode(data []byte) ([]Item, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ReadError{Err: err}
	}

	elements, ok := raw.([]any)
	if !ok {
		return nil, ErrFormat
	}

	items := make([]Item, 0, len(elements))
	for _, el := range elements {
		items = append(items, itemFrom(el))
	}
	return items, nil
}

func itemFrom(v any) Item {
	obj, ok := v.(map[string]any)
	if !ok {
		return Item{}
	}

	// A blank text still falls back to the legacy field
	text := stringField(obj, "text")
	if strings.TrimSpace(text) == "" {
		text = stringField(obj, "quote")
	}
	return Item{
		Text:     text,
		Category: stringField(obj, "category"),
	}
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
