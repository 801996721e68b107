package models

import (
	"fmt"
	"time"
)

// TodoItem is a single task owned by one user.
//
// Invariants: ID never changes, Owner never changes after creation,
// CreatedAt <= UpdatedAt. Timestamps are UTC.
type TodoItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Priority  Priority  `json:"priority"`
	Status    Status    `json:"status"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Normalize fills in defaults for fields missing from a decoded record.
func (t *TodoItem) Normalize() {
	if t.Priority == "" {
		t.Priority = PriorityMid
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
}

// BelongsTo reports whether the item has the given id and owner.
func (t TodoItem) BelongsTo(id, owner string) bool {
	return t.ID == id && t.Owner == owner
}

// Summary is the one-line listing form.
func (t TodoItem) Summary() string {
	return fmt.Sprintf("- %s | %s | %s | %s | updated %s",
		t.ID, t.Title, t.Priority, t.Status, t.UpdatedAt.Format(time.RFC3339))
}
