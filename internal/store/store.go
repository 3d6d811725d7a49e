// Package store defines the persistence gateway for quotegen.
// Everything the application persists is a string value under a string key;
// the quote list is stored as one JSON snapshot and the premium flag as "1".
package store

// Keys used by the application. The list key carries its own format tag.
const (
	QuotesKey  = "quotes_db_v2"
	PremiumKey = "quotegen_premium"
)

// Gateway manages string key-value persistence.
type Gateway interface {
	// Load retrieves the value stored under key.
	// The bool is false when the key does not exist.
	Load(key string) (string, bool, error)

	// Save stores a value. If the key already exists, its value is replaced.
	Save(key, value string) error

	// Close releases any resources (DB connections, file handles, etc.).
	Close() error
}
