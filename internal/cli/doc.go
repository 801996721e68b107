// Package cli provides the interactive to-do command-line client.
//
// It wires configuration, the two JSON stores, and a pair of nested numeric
// menus. Typical flow: sign up or log in from the first menu, then create,
// edit, list, inspect and complete items from the second.
//
//	pre-login:  [1] Login  [2] Sign Up  [3] Exit
//	post-login: [1] Create  [2] Edit  [3] List  [4] Details
//	            [5] Mark completed  [6] Logout  [7] Exit
//
// Validation problems are reported and re-prompted; store errors are logged
// and the menu is shown again. The loop is started via App.Run(ctx), which
// blocks until the user exits or input ends.
package cli
