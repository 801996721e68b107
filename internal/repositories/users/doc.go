// Package users provides the credential store used to gate the CLI.
//
// Credentials live in one JSON array document ({username, password} objects).
// Every call re-reads the whole file, and CreateUser rewrites it in full.
// There is no locking: two processes writing the same file race and the last
// writer wins.
//
// Typical Usage
//
//	repo := users.NewJSONRepository(path, logger)
//	created, _ := repo.CreateUser(ctx, "alice", "secret")
//	ok, _ := repo.Authenticate(ctx, "alice", "secret")
package users
