package port

// Cache is a goroutine-safe key-value cache.
type Cache[K comparable, V any] interface {
	// Get returns the value and true, or the zero value and false.
	Get(key K) (V, bool)

	// Set stores value, possibly evicting another entry.
	Set(key K, value V)

	Remove(key K)

	Len() int
}
