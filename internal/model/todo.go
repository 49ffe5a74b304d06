// Package model holds the domain types shared by every other package.
package model

// Todo is the domain model for a single todo entry.
//
// Priority and DueDate are opaque strings chosen by whatever surface
// created the todo; the core never interprets them.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	DueDate   string `json:"dueDate"`
}
