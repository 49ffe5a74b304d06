// Package memstore is an in-memory Storage for tests and ephemeral runs.
package memstore

// Store keeps values in a plain map. Not safe for concurrent use, which
// matches the single-gesture-at-a-time model of the app.
type Store struct {
	values map[string]string
}

func New() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.values[key] = value
	return nil
}
