package storage

import (
	"context"
	"errors"

	"github.com/sauticheck/sauticheck-api/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// Store captures the persistence operations needed by handlers. Listings
// return empty slices for no matches; point lookups return ErrNotFound.
type Store interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error)

	GetArticles(ctx context.Context, limit, offset int, category string) ([]models.Article, error)
	GetArticle(ctx context.Context, id string) (models.Article, error)
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)

	GetCivicAlerts(ctx context.Context, limit int) ([]models.CivicAlert, error)
	CreateCivicAlert(ctx context.Context, alert models.CivicAlert) (models.CivicAlert, error)

	GetJobs(ctx context.Context, limit int, jobType string) ([]models.Job, error)
	CreateJob(ctx context.Context, job models.Job) (models.Job, error)

	CreateFactCheck(ctx context.Context, check models.FactCheck) (models.FactCheck, error)
	GetFactChecksByUser(ctx context.Context, userID string) ([]models.FactCheck, error)
}
