package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/models"
)

// reportStoreErr prints the right message for a failed item lookup or write.
func (a *App) reportStoreErr(ctx context.Context, op, id string, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		a.fail("To-do item not found.")
		return
	}
	a.log.Error(ctx, op+" failed", "owner", a.userName, "id", id, "err", err)
	a.fail("Something went wrong, see the log for details.")
}

// Create prompts for the item fields and stores a new PENDING item.
func (a *App) Create(ctx context.Context) error {
	a.heading("Create To-Do")

	title, err := a.askRequired("Title: ")
	if err != nil {
		return err
	}
	details, err := a.askRequired("Details: ")
	if err != nil {
		return err
	}
	priority, err := a.askPriority("Priority (HIGH/MID/LOW): ", false)
	if err != nil {
		return err
	}

	item, err := a.todos.Add(ctx, a.userName, title, details, *priority)
	if err != nil {
		a.reportStoreErr(ctx, "add", "", err)
		return nil
	}
	a.ok(fmt.Sprintf("Created to-do item %s.", item.ID))
	return nil
}

// Edit asks for new values field by field; blank keeps the current one.
// Nothing is written when every answer is blank.
func (a *App) Edit(ctx context.Context) error {
	a.heading("Edit To-Do")

	id, err := a.askRequired("Enter item ID: ")
	if err != nil {
		return err
	}
	item, err := a.todos.Get(ctx, id, a.userName)
	if err != nil {
		a.reportStoreErr(ctx, "get", id, err)
		return nil
	}

	var patch models.Patch

	title, err := a.ask(fmt.Sprintf("Title [%s]: ", item.Title))
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	details, err := a.ask(fmt.Sprintf("Details [%s]: ", item.Details))
	if err != nil {
		return err
	}
	if details != "" {
		patch.Details = &details
	}

	if patch.Priority, err = a.askPriority(fmt.Sprintf("Priority (%s) [HIGH/MID/LOW]: ", item.Priority), true); err != nil {
		return err
	}
	if patch.Status, err = a.askStatus(fmt.Sprintf("Status (%s) [PENDING/COMPLETED]: ", item.Status), true); err != nil {
		return err
	}

	if patch.IsEmpty() {
		a.note("No changes provided.")
		return nil
	}

	if _, err := a.todos.Update(ctx, id, a.userName, patch); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.fail("Unable to update to-do item.")
			return nil
		}
		a.reportStoreErr(ctx, "update", id, err)
		return nil
	}
	a.ok("To-do item updated.")
	return nil
}

// List prints a one-line summary of each of the user's items.
func (a *App) List(ctx context.Context) error {
	a.heading("Your To-Do Items")

	items, err := a.todos.List(ctx, a.userName)
	if err != nil {
		a.reportStoreErr(ctx, "list", "", err)
		return nil
	}
	if len(items) == 0 {
		a.note("No to-do items found.")
		return nil
	}
	for _, item := range items {
		a.println(item.Summary())
	}
	return nil
}

// Show prints every field of one item.
func (a *App) Show(ctx context.Context) error {
	a.heading("View To-Do Details")

	id, err := a.askRequired("Enter item ID: ")
	if err != nil {
		return err
	}
	item, err := a.todos.Get(ctx, id, a.userName)
	if err != nil {
		a.reportStoreErr(ctx, "get", id, err)
		return nil
	}

	a.heading("To-Do Details")
	a.println("ID: " + item.ID)
	a.println("Title: " + item.Title)
	a.println("Details: " + item.Details)
	a.println("Priority: " + item.Priority.String())
	a.println("Status: " + item.Status.String())
	a.println("Owner: " + item.Owner)
	a.println("Created: " + item.CreatedAt.Format(time.RFC3339Nano))
	a.println("Updated: " + item.UpdatedAt.Format(time.RFC3339Nano))
	return nil
}

// MarkCompleted sets the status of one item to COMPLETED.
func (a *App) MarkCompleted(ctx context.Context) error {
	a.heading("Mark To-Do Completed")

	id, err := a.askRequired("Enter item ID: ")
	if err != nil {
		return err
	}
	if _, err := a.todos.MarkCompleted(ctx, id, a.userName); err != nil {
		a.reportStoreErr(ctx, "mark completed", id, err)
		return nil
	}
	a.ok("To-do item marked as completed.")
	return nil
}
