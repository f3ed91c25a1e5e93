package storage

// KV is the key-value persistence collaborator. Each key stores a single
// JSON-encoded blob; collections are read and written whole, never
// partially. A missing key is reported through the bool, not an error.
type KV interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Blobs
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error

	// Path returns the location of the backing file, for backups and
	// diagnostics.
	Path() string
}
