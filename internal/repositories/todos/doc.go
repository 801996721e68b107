// Package todos provides the owner-scoped to-do item store.
//
// Items live in one JSON array document. Every call re-reads the file and
// every mutation rewrites it in full; nothing is cached between calls. Reads
// and updates always filter by owner as well as id, so an item owned by
// someone else is indistinguishable from a missing one.
package todos
