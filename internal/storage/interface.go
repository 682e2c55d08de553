package storage

// Backend is the persistence port: a flat key to JSON-record store. Values
// are opaque JSON documents; the domain layer owns their shape and handles
// malformed records on load.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error

	// Path returns the location backing this store.
	Path() string
}
