package todos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/models"
)

var _ Repository = (*JSONRepository)(nil)

type JSONRepository struct {
	path  string
	log   logging.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*JSONRepository)

// WithClock replaces the time source used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *JSONRepository) { r.now = now }
}

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(newID func() string) Option {
	return func(r *JSONRepository) { r.newID = newID }
}

func NewJSONRepository(path string, log logging.Logger, opts ...Option) *JSONRepository {
	r := &JSONRepository{
		path:  path,
		log:   log.With("store", "todos", "path", path),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *JSONRepository) timestamp() time.Time {
	return r.now().UTC()
}

func (r *JSONRepository) load(ctx context.Context) ([]models.TodoItem, error) {
	items, rep, err := filex.ReadList[models.TodoItem](r.path)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	if rep.Corrupt {
		r.log.Warn(ctx, "todos document is not a JSON array, treating as empty")
	}
	if rep.Skipped > 0 {
		r.log.Warn(ctx, "skipped malformed todo records", "count", rep.Skipped)
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, nil
}

func (r *JSONRepository) save(items []models.TodoItem) error {
	if err := filex.WriteList(r.path, items); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	return nil
}

// Add creates a PENDING item with a fresh id and created_at == updated_at.
func (r *JSONRepository) Add(ctx context.Context, owner, title, details string, priority models.Priority) (models.TodoItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return models.TodoItem{}, err
	}

	ts := r.timestamp()
	item := models.TodoItem{
		ID:        r.newID(),
		Title:     title,
		Details:   details,
		Priority:  priority,
		Status:    models.StatusPending,
		Owner:     owner,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	item.Normalize()

	items = append(items, item)
	if err := r.save(items); err != nil {
		return models.TodoItem{}, err
	}

	r.log.Info(ctx, "item added", "owner", owner, "id", item.ID)
	return item, nil
}

// List returns the owner's items in append order.
func (r *JSONRepository) List(ctx context.Context, owner string) ([]models.TodoItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]models.TodoItem, 0, len(items))
	for _, it := range items {
		if it.Owner == owner {
			owned = append(owned, it)
		}
	}
	return owned, nil
}

func (r *JSONRepository) Get(ctx context.Context, id, owner string) (models.TodoItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return models.TodoItem{}, err
	}

	for _, it := range items {
		if it.BelongsTo(id, owner) {
			return it, nil
		}
	}
	return models.TodoItem{}, common.ErrorNotFound
}

// Update applies patch to the first item matching (id, owner) and always
// refreshes updated_at. An empty patch is not special-cased here.
func (r *JSONRepository) Update(ctx context.Context, id, owner string, patch models.Patch) (models.TodoItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return models.TodoItem{}, err
	}

	for i := range items {
		if !items[i].BelongsTo(id, owner) {
			continue
		}

		patch.Apply(&items[i], r.timestamp())
		if err := r.save(items); err != nil {
			return models.TodoItem{}, err
		}

		r.log.Info(ctx, "item updated", "owner", owner, "id", id)
		return items[i], nil
	}
	return models.TodoItem{}, common.ErrorNotFound
}

func (r *JSONRepository) MarkCompleted(ctx context.Context, id, owner string) (models.TodoItem, error) {
	return r.Update(ctx, id, owner, models.CompletedPatch())
}
