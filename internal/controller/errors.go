package controller

import "fmt"

// DeserializationError reports that the stored blob under a key is not
// valid JSON. The stored data is left untouched; callers decide how to
// surface it to the user.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("deserialize %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// PersistenceError reports a failed storage write. In-memory state stays
// authoritative; only durability is lost.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %q: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
