package todos

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/common"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns t0, t0+1s, t0+2s, ... on successive calls.
type fakeClock struct {
	t0    time.Time
	calls int
}

func (c *fakeClock) Now() time.Time {
	t := c.t0.Add(time.Duration(c.calls) * time.Second)
	c.calls++
	return t
}

func newRepo(t *testing.T, opts ...Option) (*JSONRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	return NewJSONRepository(path, logging.Discard(), opts...), path
}

func readRaw(t *testing.T, path string) []map[string]any {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	return raw
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	item, err := repo.Add(ctx, "alice", "Buy milk", "2 liters", models.PriorityHigh)
	require.NoError(t, err)

	assert.Equal(t, "alice", item.Owner)
	assert.Equal(t, "Buy milk", item.Title)
	assert.Equal(t, "2 liters", item.Details)
	assert.Equal(t, models.PriorityHigh, item.Priority)
	assert.Equal(t, models.StatusPending, item.Status)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)
	assert.Equal(t, time.UTC, item.CreatedAt.Location())
	assert.NotEmpty(t, item.ID)

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Buy milk", items[0].Title)

	items, err = repo.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, items)

	raw := readRaw(t, path)
	require.Len(t, raw, 1)
	assert.Equal(t, "HIGH", raw[0]["priority"])
	assert.Equal(t, "PENDING", raw[0]["status"])
	for _, k := range []string{"id", "title", "details", "priority", "status", "owner", "created_at", "updated_at"} {
		assert.Contains(t, raw[0], k)
	}
}

func TestAdd_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		item, err := repo.Add(ctx, "alice", fmt.Sprintf("t%d", i), "", models.PriorityLow)
		require.NoError(t, err)
		require.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestList_PreservesAppendOrderAndFiltersOwner(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	var want []string
	for i, owner := range []string{"alice", "bob", "alice", "carol", "alice"} {
		item, err := repo.Add(ctx, owner, fmt.Sprintf("t%d", i), "d", models.PriorityMid)
		require.NoError(t, err)
		if owner == "alice" {
			want = append(want, item.ID)
		}
	}

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	var got []string
	for _, it := range items {
		assert.Equal(t, "alice", it.Owner)
		got = append(got, it.ID)
	}
	assert.Equal(t, want, got)
}

func TestList_OwnerFilterIgnoresIDCollisions(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t, WithIDGenerator(func() string { return "same" }))

	_, err := repo.Add(ctx, "alice", "mine", "", models.PriorityMid)
	require.NoError(t, err)
	_, err = repo.Add(ctx, "bob", "his", "", models.PriorityMid)
	require.NoError(t, err)

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "mine", items[0].Title)

	got, err := repo.Get(ctx, "same", "bob")
	require.NoError(t, err)
	assert.Equal(t, "his", got.Title)
}

func TestGetAndUpdate(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t0: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo, _ := newRepo(t, WithClock(clock.Now))

	item, err := repo.Add(ctx, "alice", "Initial", "Details", models.PriorityMid)
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, item.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Initial", fetched.Title)

	title, details := "Updated", "Updated details"
	prio, status := models.PriorityLow, models.StatusCompleted
	updated, err := repo.Update(ctx, item.ID, "alice", models.Patch{
		Title:    &title,
		Details:  &details,
		Priority: &prio,
		Status:   &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated", updated.Title)
	assert.Equal(t, "Updated details", updated.Details)
	assert.Equal(t, models.PriorityLow, updated.Priority)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, item.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock.t0.Add(time.Second), updated.UpdatedAt)

	// persisted
	again, err := repo.Get(ctx, item.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Updated", again.Title)
	assert.True(t, again.UpdatedAt.Equal(updated.UpdatedAt))

	_, err = repo.Update(ctx, "missing", "alice", models.Patch{Title: &title})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_PartialLeavesOtherFields(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t0: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	repo, _ := newRepo(t, WithClock(clock.Now))

	item, err := repo.Add(ctx, "alice", "Title", "Details", models.PriorityHigh)
	require.NoError(t, err)

	details := "new details"
	updated, err := repo.Update(ctx, item.ID, "alice", models.Patch{Details: &details})
	require.NoError(t, err)

	assert.Equal(t, "Title", updated.Title)
	assert.Equal(t, "new details", updated.Details)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, models.StatusPending, updated.Status)
	assert.Equal(t, "alice", updated.Owner)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdate_EmptyPatchRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t0: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	repo, _ := newRepo(t, WithClock(clock.Now))

	item, err := repo.Add(ctx, "alice", "Title", "Details", models.PriorityHigh)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, item.ID, "alice", models.Patch{})
	require.NoError(t, err)
	assert.Equal(t, item.Title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt))
}

func TestOwnershipIsEnforced(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	item, err := repo.Add(ctx, "alice", "secret", "", models.PriorityMid)
	require.NoError(t, err)

	_, err = repo.Get(ctx, item.ID, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)

	title := "hijacked"
	_, err = repo.Update(ctx, item.ID, "bob", models.Patch{Title: &title})
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.MarkCompleted(ctx, item.ID, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)

	got, err := repo.Get(ctx, item.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Title)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestMarkCompleted(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	item, err := repo.Add(ctx, "alice", "Complete me", "Details", models.PriorityMid)
	require.NoError(t, err)

	completed, err := repo.MarkCompleted(ctx, item.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	assert.False(t, completed.UpdatedAt.Before(completed.CreatedAt))
	assert.Equal(t, "Complete me", completed.Title)

	_, err = repo.MarkCompleted(ctx, "missing", "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRoundTripPreservesFields(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	repo, path := newRepo(t, WithClock(func() time.Time { return ts }))

	item, err := repo.Add(ctx, "alice", "Title", "Details", models.PriorityLow)
	require.NoError(t, err)

	other := NewJSONRepository(path, logging.Discard())
	got, err := other.Get(ctx, item.ID, "alice")
	require.NoError(t, err)

	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, item.Details, got.Details)
	assert.Equal(t, item.Priority, got.Priority)
	assert.Equal(t, item.Status, got.Status)
	assert.Equal(t, item.Owner, got.Owner)
	assert.True(t, item.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, item.UpdatedAt.Equal(got.UpdatedAt))
}

func TestLoad_DefaultsAndMalformedRecords(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)

	doc := `[
  {"id": "1", "title": "no enums", "owner": "alice", "created_at": "2024-01-01T00:00:00+00:00", "updated_at": "2024-01-01T00:00:00+00:00"},
  "not an object",
  {"id": "2", "title": "bad priority", "priority": "URGENT", "owner": "alice"},
  {"id": "3", "title": "ok", "priority": "LOW", "status": "COMPLETED", "owner": "alice"}
]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, models.PriorityMid, items[0].Priority)
	assert.Equal(t, models.StatusPending, items[0].Status)

	assert.Equal(t, "3", items[1].ID)
	assert.Equal(t, models.StatusCompleted, items[1].Status)
}

func TestLoad_CorruptDocumentIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo, path := newRepo(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "1"}`), 0o600))

	items, err := repo.List(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = repo.Get(ctx, "1", "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLoadError_Propagates(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.Discard())

	_, err := repo.List(context.Background(), "alice")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorNotFound)
}
