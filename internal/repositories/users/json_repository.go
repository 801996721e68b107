package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophtodo/internal/filex"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/models"
)

var _ Repository = (*JSONRepository)(nil)

type JSONRepository struct {
	path string
	log  logging.Logger
}

func NewJSONRepository(path string, log logging.Logger) *JSONRepository {
	return &JSONRepository{path: path, log: log.With("store", "users", "path", path)}
}

func (r *JSONRepository) load(ctx context.Context) ([]models.Credential, error) {
	creds, rep, err := filex.ReadList[models.Credential](r.path)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if rep.Corrupt {
		r.log.Warn(ctx, "users document is not a JSON array, treating as empty")
	}
	if rep.Skipped > 0 {
		r.log.Warn(ctx, "skipped malformed user records", "count", rep.Skipped)
	}
	return creds, nil
}

func (r *JSONRepository) save(creds []models.Credential) error {
	if err := filex.WriteList(r.path, creds); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

func (r *JSONRepository) CreateUser(ctx context.Context, username, password string) (bool, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for _, c := range creds {
		if c.Username == username {
			r.log.Info(ctx, "signup rejected, username taken", "username", username)
			return false, nil
		}
	}

	creds = append(creds, models.Credential{Username: username, Password: password})
	if err := r.save(creds); err != nil {
		return false, err
	}

	r.log.Info(ctx, "user created", "username", username)
	return true, nil
}

func (r *JSONRepository) Authenticate(ctx context.Context, username, password string) (bool, error) {
	creds, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for _, c := range creds {
		if c.Matches(username, password) {
			return true, nil
		}
	}

	r.log.Debug(ctx, "authentication failed", "username", username)
	return false, nil
}
