package cli

import (
	"context"
	"fmt"
)

// sessionEnd says why the post-login loop stopped.
type sessionEnd int

const (
	endLogout sessionEnd = iota
	endExit
)

// preLoginLoop serves Login / Sign Up / Exit. Only input errors (including
// io.EOF) are returned; handlers report their own problems.
func (a *App) preLoginLoop(ctx context.Context) error {
	for {
		a.heading("To-Do CLI")
		a.println("[1] Login")
		a.println("[2] Sign Up")
		a.println("[3] Exit")

		choice, err := a.ask("Select an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.Login(ctx); err != nil {
				return err
			}
			if !a.isLoggedIn() {
				continue
			}
			end, err := a.sessionLoop(ctx)
			if err != nil {
				return err
			}
			if end == endExit {
				return nil
			}
		case "2":
			if err := a.Register(ctx); err != nil {
				return err
			}
		case "3":
			a.println("Goodbye.")
			return nil
		default:
			a.fail("Invalid option. Please try again.")
		}
	}
}

// sessionLoop serves the item menu for the logged-in user until Logout or Exit.
func (a *App) sessionLoop(ctx context.Context) (sessionEnd, error) {
	commands := map[string]func(context.Context) error{
		"1": a.Create,
		"2": a.Edit,
		"3": a.List,
		"4": a.Show,
		"5": a.MarkCompleted,
	}

	for {
		a.heading(fmt.Sprintf("To-Do CLI (%s)", a.userName))
		a.println("[1] Create to-do item")
		a.println("[2] Edit to-do item")
		a.println("[3] View all to-do items")
		a.println("[4] View to-do item details")
		a.println("[5] Mark to-do item as completed")
		a.println("[6] Logout")
		a.println("[7] Exit")

		choice, err := a.ask("Select an option: ")
		if err != nil {
			return endExit, err
		}

		if cmd, ok := commands[choice]; ok {
			if err := cmd(ctx); err != nil {
				return endExit, err
			}
			continue
		}

		switch choice {
		case "6":
			return endLogout, a.Logout(ctx)
		case "7":
			a.println("Goodbye.")
			return endExit, nil
		default:
			a.fail("Invalid option. Please try again.")
		}
	}
}
