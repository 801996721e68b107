package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophtodo/internal/common"
)

// Priority classifies how urgent an item is. It is persisted by label.
type Priority string

const (
	PriorityHigh Priority = "HIGH"
	PriorityMid  Priority = "MID"
	PriorityLow  Priority = "LOW"
)

// Priorities lists the known priority labels in display order.
var Priorities = []Priority{PriorityHigh, PriorityMid, PriorityLow}

// Valid reports whether p is one of the known labels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMid, PriorityLow:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

// UnmarshalText accepts only the exact labels.
func (p *Priority) UnmarshalText(b []byte) error {
	v := Priority(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", common.ErrorInvalidPriority, string(b))
	}
	*p = v
	return nil
}

// ParsePriority trims s and matches it against the labels ignoring case.
func ParsePriority(s string) (Priority, error) {
	v := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidPriority, s)
	}
	return v, nil
}

// Status is the lifecycle state of an item. It is persisted by label.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

// Statuses lists the known status labels in display order.
var Statuses = []Status{StatusPending, StatusCompleted}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

func (s Status) String() string { return string(s) }

func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", common.ErrorInvalidStatus, string(b))
	}
	*s = v
	return nil
}

// ParseStatus trims s and matches it against the labels ignoring case.
func ParseStatus(s string) (Status, error) {
	v := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidStatus, s)
	}
	return v, nil
}
