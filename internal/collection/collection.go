// Package collection manages the ordered quote list and the current selection.
// Every successful mutation writes the whole list to the gateway as one snapshot.
package collection

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/yiblet/quotegen/internal/interchange"
	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/quote"
	"github.com/yiblet/quotegen/internal/store"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Collection is the in-memory quote list backed by a store.Gateway.
// It is safe for concurrent use.
type Collection struct {
	mu       sync.Mutex
	gw       store.Gateway
	quotes   []quote.Quote
	selected string
	newID    quote.IDFunc
	rng      *rand.Rand
	log      *slog.Logger
}

// Option configures a Collection.
type Option func(*Collection)

// WithIDFunc overrides id generation.
func WithIDFunc(f quote.IDFunc) Option {
	return func(c *Collection) {
		c.newID = f
	}
}

// WithRand sets the random source used by Random.
func WithRand(r *rand.Rand) Option {
	return func(c *Collection) {
		c.rng = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Collection) {
		c.log = l
	}
}

// Open loads the stored list from gw. A missing or malformed value is
// replaced by the seed quotes. Only a failing gateway is reported as an error.
func Open(gw store.Gateway, opts ...Option) (*Collection, error) {
	c := &Collection{
		gw:    gw,
		newID: quote.NewID,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, ok, err := gw.Load(store.QuotesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	quotes, clean := c.decodeStored(raw, ok)
	if quotes == nil {
		if ok {
			c.log.Warn("stored quote list is malformed, using defaults", "key", store.QuotesKey)
		}
		quotes = quote.Seed(c.newID)
		clean = false
	}
	c.quotes = quotes
	if len(c.quotes) > 0 {
		c.selected = c.quotes[0].ID
	}

	if !clean {
		c.mu.Lock()
		if err := c.persistLocked(); err != nil {
			c.log.Warn("failed to write initial snapshot", "error", err)
		}
		c.mu.Unlock()
	}

	c.log.Debug("collection opened", "count", len(c.quotes))
	return c, nil
}

// decodeStored parses the stored snapshot. It returns nil when the value is
// absent or malformed. The bool is false when entries had to be repaired.
func (c *Collection) decodeStored(raw string, ok bool) ([]quote.Quote, bool) {
	if !ok {
		return nil, false
	}

	var stored []quote.Quote
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored == nil {
		return nil, false
	}

	clean := true
	seen := make(map[string]bool, len(stored))
	result := make([]quote.Quote, 0, len(stored))
	for _, q := range stored {
		text, category, valid := quote.Normalize(q.Text, q.Category)
		if !valid {
			clean = false
			continue
		}
		if text != q.Text || category != q.Category {
			clean = false
		}
		id := q.ID
		if id == "" || seen[id] {
			id = c.newID()
			clean = false
		}
		seen[id] = true
		result = append(result, quote.Quote{ID: id, Text: text, Category: category})
	}
	return result, clean
}

// Add creates a quote at the front of the list and selects it.
// Blank text is ignored and reported as added == false with a nil error.
func (c *Collection) Add(text, category string) (quote.Quote, bool, error) {
	text, category, ok := quote.Normalize(text, category)
	if !ok {
		return quote.Quote{}, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	q := quote.Quote{ID: c.newID(), Text: text, Category: category}
	c.quotes = append([]quote.Quote{q}, c.quotes...)
	c.selected = q.ID

	c.log.Debug("quote added", "id", q.ID, "category", q.Category)
	return q, true, c.persistLocked()
}

// DeletePrompt is the confirmation question asked before removing q.
func DeletePrompt(q quote.Quote) string {
	return fmt.Sprintf("Delete quote %q?", quote.Preview(q.Text, 60))
}

// Remove deletes the quote with id after confirm agrees.
// A declined or nil confirmer leaves the list unchanged and returns false.
func (c *Collection) Remove(id string, confirm Confirmer) (bool, error) {
	target, err := c.Get(id)
	if err != nil {
		return false, err
	}

	if confirm == nil || !confirm.Confirm(DeletePrompt(target)) {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		// Removed while the prompt was open
		return false, fmt.Errorf("%w: %s", quote.ErrNotFound, id)
	}

	c.quotes = append(c.quotes[:idx:idx], c.quotes[idx+1:]...)
	if c.selected == id {
		c.selected = ""
		if len(c.quotes) > 0 {
			c.selected = c.quotes[0].ID
		}
	}

	c.log.Debug("quote removed", "id", id)
	return true, c.persistLocked()
}

// ImportBatch decodes an exchange payload and prepends every usable item
// with a fresh id, in source order. Source ids are ignored.
// Decode failures leave the list unchanged.
func (c *Collection) ImportBatch(data []byte) (int, error) {
	items, err := interchange.Decode(data)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	added := make([]quote.Quote, 0, len(items))
	for _, item := range items {
		text, category, ok := quote.Normalize(item.Text, item.Category)
		if !ok {
			continue
		}
		added = append(added, quote.Quote{ID: c.newID(), Text: text, Category: category})
	}

	if skipped := len(items) - len(added); skipped > 0 {
		c.log.Info("skipped import entries without text", "skipped", skipped)
	}
	if len(added) == 0 {
		return 0, nil
	}

	c.quotes = append(added, c.quotes...)
	if c.selected == "" {
		c.selected = c.quotes[0].ID
	}

	c.log.Debug("quotes imported", "count", len(added))
	return len(added), c.persistLocked()
}

// ImportResult is the continuation of an asynchronous file read.
func (c *Collection) ImportResult(res interchange.ReadResult) (int, error) {
	if res.Err != nil {
		return 0, &interchange.ReadError{Err: res.Err}
	}
	return c.ImportBatch(res.Data)
}

// Export serializes the full list in order, ids included.
func (c *Collection) Export() ([]byte, error) {
	return interchange.Encode(c.List())
}

// List returns a copy of all quotes, newest first.
func (c *Collection) List() []quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]quote.Quote(nil), c.quotes...)
}

// Len returns the number of quotes.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.quotes)
}

// Filter returns the quotes matching query.
func (c *Collection) Filter(query quote.Query) []quote.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return quote.Filter(c.quotes, query)
}

// Categories returns "all" followed by the distinct categories in list order.
func (c *Collection) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return quote.Categories(c.quotes)
}

// Get returns the quote with id.
func (c *Collection) Get(id string) (quote.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return quote.Quote{}, fmt.Errorf("%w: %s", quote.ErrNotFound, id)
	}
	return c.quotes[idx], nil
}

// Lookup resolves a user-supplied reference: an exact id, a list index
// (0 = newest), or an unambiguous id prefix.
func (c *Collection) Lookup(ref string) (quote.Quote, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.indexLocked(ref); idx >= 0 {
		return c.quotes[idx], nil
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 || n >= len(c.quotes) {
			return quote.Quote{}, fmt.Errorf("index %d out of range (0-%d)", n, len(c.quotes)-1)
		}
		return c.quotes[n], nil
	}

	var match *quote.Quote
	for i := range c.quotes {
		if ref != "" && strings.HasPrefix(c.quotes[i].ID, ref) {
			if match != nil {
				return quote.Quote{}, fmt.Errorf("ambiguous id prefix: %s", ref)
			}
			match = &c.quotes[i]
		}
	}
	if match == nil {
		return quote.Quote{}, fmt.Errorf("%w: %s", quote.ErrNotFound, ref)
	}
	return *match, nil
}

// Select makes id the selected quote.
func (c *Collection) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(id) < 0 {
		return fmt.Errorf("%w: %s", quote.ErrNotFound, id)
	}
	c.selected = id
	return nil
}

// Selected returns the selected quote. The bool is false when nothing is selected.
func (c *Collection) Selected() (quote.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(c.selected)
	if idx < 0 {
		return quote.Quote{}, false
	}
	return c.quotes[idx], true
}

// Random selects and returns a uniformly chosen quote from the filtered view.
func (c *Collection) Random(query quote.Query) (quote.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := quote.Filter(c.quotes, query)
	if len(view) == 0 {
		return quote.Quote{}, false
	}

	q := view[c.rng.IntN(len(view))]
	c.selected = q.ID
	return q, true
}

func (c *Collection) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	for i, q := range c.quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) persistLocked() error {
	data, err := interchange.Encode(c.quotes)
	if err != nil {
		return err
	}
	if err := c.gw.Save(store.QuotesKey, string(data)); err != nil {
		c.log.Warn("failed to persist quotes", "error", err)
		return fmt.Errorf("failed to persist quotes: %w", err)
	}
	return nil
}
