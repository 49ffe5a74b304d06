// Package store defines the key/value persistence capability the
// controller writes through. Implementations live in subpackages.
package store

// Storage is a string key/value store. Get reports whether the key was
// present at all so callers can tell "no data yet" from an empty value.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
