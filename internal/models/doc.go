// Package models defines the records persisted by the to-do tracker:
// user credentials and owner-scoped to-do items.
package models
