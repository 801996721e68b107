package todos

import (
	"context"

	"github.com/dmitrijs2005/gophtodo/internal/models"
)

// Repository manages to-do items on behalf of their owners.
// Lookups that find no matching (id, owner) pair return common.ErrorNotFound.
type Repository interface {
	Add(ctx context.Context, owner, title, details string, priority models.Priority) (models.TodoItem, error)
	List(ctx context.Context, owner string) ([]models.TodoItem, error)
	Get(ctx context.Context, id, owner string) (models.TodoItem, error)
	Update(ctx context.Context, id, owner string, patch models.Patch) (models.TodoItem, error)
	MarkCompleted(ctx context.Context, id, owner string) (models.TodoItem, error)
}
