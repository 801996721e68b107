package cli

import (
	"context"
)

// Register prompts for a username and password and creates the account.
// A taken username is reported, not returned as an error.
func (a *App) Register(ctx context.Context) error {
	a.heading("Sign Up")

	userName, err := a.askRequired("Username: ")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password: ")
	if err != nil {
		return err
	}

	created, err := a.users.CreateUser(ctx, userName, password)
	if err != nil {
		a.log.Error(ctx, "signup failed", "username", userName, "err", err)
		a.fail("Unable to create account.")
		return nil
	}
	if !created {
		a.fail("Username already exists.")
		return nil
	}

	a.ok("Account created. You can now log in.")
	return nil
}

// Login prompts for credentials and, on a match, starts a session for that user.
func (a *App) Login(ctx context.Context) error {
	a.heading("Login")

	userName, err := a.askRequired("Username: ")
	if err != nil {
		return err
	}
	password, err := a.askPassword("Password: ")
	if err != nil {
		return err
	}

	ok, err := a.users.Authenticate(ctx, userName, password)
	if err != nil {
		a.log.Error(ctx, "login failed", "username", userName, "err", err)
		a.fail("Unable to log in.")
		return nil
	}
	if !ok {
		a.fail("Invalid username or password.")
		return nil
	}

	a.userName = userName
	a.log.Info(ctx, "login successful", "username", userName)
	a.ok("Login successful.")
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	a.log.Info(ctx, "logout", "username", a.userName)
	a.userName = ""
	a.ok("Logged out.")
	return nil
}
