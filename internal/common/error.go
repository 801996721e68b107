// Package common defines sentinel errors shared by the stores and the CLI.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors raised at the prompt layer.
	ErrorEmptyValue      = errors.New("value cannot be empty")
	ErrorInvalidPriority = errors.New("invalid priority")
	ErrorInvalidStatus   = errors.New("invalid status")
)
