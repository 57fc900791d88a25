package repository

// Table is the read-only fact mapping. Keys are canonical (lower-case).
// Implementations must be safe for concurrent reads.
type Table interface {
	Lookup(key string) (string, bool)
	Keys() []string
}
