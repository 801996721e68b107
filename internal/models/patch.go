package models

import "time"

// Patch is a sparse update for a TodoItem. A nil field is left untouched.
type Patch struct {
	Title    *string
	Details  *string
	Priority *Priority
	Status   *Status
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Details == nil && p.Priority == nil && p.Status == nil
}

// Apply overwrites the present fields of t and stamps UpdatedAt with now,
// even when the patch is empty. UpdatedAt never moves before CreatedAt.
func (p Patch) Apply(t *TodoItem, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Details != nil {
		t.Details = *p.Details
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// CompletedPatch sets only the status to COMPLETED.
func CompletedPatch() Patch {
	s := StatusCompleted
	return Patch{Status: &s}
}
