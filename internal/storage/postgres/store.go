package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store provides Postgres-backed persistence for the platform entities.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and runs migrations.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT 'Kenya',
			role TEXT NOT NULL DEFAULT 'user',
			articles_read INTEGER NOT NULL DEFAULT 0,
			facts_checked INTEGER NOT NULL DEFAULT 0,
			bookmarks_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			excerpt TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL,
			source TEXT NOT NULL,
			author TEXT,
			image_url TEXT,
			verified BOOLEAN NOT NULL DEFAULT TRUE,
			published_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS civic_alerts (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			action_text TEXT,
			action_url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			company TEXT NOT NULL,
			location TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL,
			requirements TEXT NOT NULL,
			salary TEXT,
			application_url TEXT,
			posted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ
		);`,
		`CREATE TABLE IF NOT EXISTS fact_checks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id),
			text TEXT NOT NULL,
			result TEXT NOT NULL,
			confidence INTEGER NOT NULL,
			explanation TEXT,
			sources JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS articles_published_at_idx ON articles (published_at DESC);`,
		`CREATE INDEX IF NOT EXISTS fact_checks_user_id_idx ON fact_checks (user_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

const userColumns = `id, username, email, password, first_name, last_name, location, role,
	articles_read, facts_checked, bookmarks_count, created_at`

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id)
	return scanUser(row)
}

// GetUserByEmail fetches a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1;`, email)
	return scanUser(row)
}

// GetUserByUsername fetches a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username)
	return scanUser(row)
}

// CreateUser inserts a new user row with a fresh id and zeroed counters.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (id, username, email, password, first_name, last_name, location, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), user.Username, user.Email, user.Password,
		user.FirstName, user.LastName, user.Location, user.Role)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, err
	}
	return created, nil
}

// UpdateUser merges the non-nil fields of update into the stored row.
func (s *Store) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	const query = `
		UPDATE users SET
			location = COALESCE($2, location),
			articles_read = COALESCE($3, articles_read),
			facts_checked = COALESCE($4, facts_checked),
			bookmarks_count = COALESCE($5, bookmarks_count)
		WHERE id = $1
		RETURNING ` + userColumns + `;`
	row := s.pool.QueryRow(ctx, query, id,
		update.Location, update.ArticlesRead, update.FactsChecked, update.BookmarksCount)
	return scanUser(row)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.Location, &user.Role,
		&user.ArticlesRead, &user.FactsChecked, &user.BookmarksCount, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

const articleColumns = `id, title, excerpt, content, category, source, author, image_url,
	verified, published_at, created_at`

// GetArticles lists articles newest-first, optionally filtered by category.
func (s *Store) GetArticles(ctx context.Context, limit, offset int, category string) ([]models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	args := []any{limit, offset}
	if category != "" {
		query += ` WHERE category = $3`
		args = append(args, category)
	}
	query += ` ORDER BY published_at DESC OFFSET $2 LIMIT $1;`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category,
			&a.Source, &a.Author, &a.ImageURL, &a.Verified, &a.PublishedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticle fetches an article by id.
func (s *Store) GetArticle(ctx context.Context, id string) (models.Article, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1;`, id)
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category,
		&a.Source, &a.Author, &a.ImageURL, &a.Verified, &a.PublishedAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Article{}, storage.ErrNotFound
		}
		return models.Article{}, err
	}
	return a, nil
}

// CreateArticle inserts a new article row with server-side id and timestamps.
func (s *Store) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	const query = `
		INSERT INTO articles (id, title, excerpt, content, category, source, author, image_url, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + articleColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), article.Title, article.Excerpt, article.Content,
		article.Category, article.Source, article.Author, article.ImageURL, article.Verified)
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Excerpt, &a.Content, &a.Category,
		&a.Source, &a.Author, &a.ImageURL, &a.Verified, &a.PublishedAt, &a.CreatedAt)
	if err != nil {
		return models.Article{}, err
	}
	return a, nil
}

// GetCivicAlerts lists active alerts newest-first.
func (s *Store) GetCivicAlerts(ctx context.Context, limit int) ([]models.CivicAlert, error) {
	const query = `
		SELECT id, title, message, type, category, action_text, action_url, is_active, created_at
		FROM civic_alerts
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT $1;`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]models.CivicAlert, 0)
	for rows.Next() {
		var a models.CivicAlert
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.Type, &a.Category,
			&a.ActionText, &a.ActionURL, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// CreateCivicAlert inserts a new alert row.
func (s *Store) CreateCivicAlert(ctx context.Context, alert models.CivicAlert) (models.CivicAlert, error) {
	const query = `
		INSERT INTO civic_alerts (id, title, message, type, category, action_text, action_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, message, type, category, action_text, action_url, is_active, created_at;`
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), alert.Title, alert.Message, alert.Type, alert.Category,
		alert.ActionText, alert.ActionURL, alert.IsActive)
	var a models.CivicAlert
	err := row.Scan(&a.ID, &a.Title, &a.Message, &a.Type, &a.Category,
		&a.ActionText, &a.ActionURL, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return models.CivicAlert{}, err
	}
	return a, nil
}

const jobColumns = `id, title, company, location, type, description, requirements, salary,
	application_url, posted_at, expires_at`

// GetJobs lists jobs newest-first, optionally filtered by type.
func (s *Store) GetJobs(ctx context.Context, limit int, jobType string) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{limit}
	if jobType != "" {
		query += ` WHERE type = $2`
		args = append(args, jobType)
	}
	query += ` ORDER BY posted_at DESC LIMIT $1;`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.Job, 0)
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type,
			&j.Description, &j.Requirements, &j.Salary, &j.ApplicationURL,
			&j.PostedAt, &j.ExpiresAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// CreateJob inserts a new job row.
func (s *Store) CreateJob(ctx context.Context, job models.Job) (models.Job, error) {
	const query = `
		INSERT INTO jobs (id, title, company, location, type, description, requirements, salary, application_url, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + jobColumns + `;`
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), job.Title, job.Company, job.Location, job.Type,
		job.Description, job.Requirements, job.Salary, job.ApplicationURL, job.ExpiresAt)
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type,
		&j.Description, &j.Requirements, &j.Salary, &j.ApplicationURL,
		&j.PostedAt, &j.ExpiresAt)
	if err != nil {
		return models.Job{}, err
	}
	return j, nil
}

// CreateFactCheck inserts a new fact check row.
func (s *Store) CreateFactCheck(ctx context.Context, check models.FactCheck) (models.FactCheck, error) {
	const query = `
		INSERT INTO fact_checks (id, user_id, text, result, confidence, explanation, sources)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, text, result, confidence, explanation, sources, created_at;`
	row := s.pool.QueryRow(ctx, query,
		uuid.NewString(), check.UserID, check.Text, check.Result,
		check.Confidence, check.Explanation, check.Sources)
	var c models.FactCheck
	err := row.Scan(&c.ID, &c.UserID, &c.Text, &c.Result, &c.Confidence,
		&c.Explanation, &c.Sources, &c.CreatedAt)
	if err != nil {
		return models.FactCheck{}, err
	}
	return c, nil
}

// GetFactChecksByUser lists one user's fact checks newest-first.
func (s *Store) GetFactChecksByUser(ctx context.Context, userID string) ([]models.FactCheck, error) {
	const query = `
		SELECT id, user_id, text, result, confidence, explanation, sources, created_at
		FROM fact_checks
		WHERE user_id = $1
		ORDER BY created_at DESC;`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make([]models.FactCheck, 0)
	for rows.Next() {
		var c models.FactCheck
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.Result, &c.Confidence,
			&c.Explanation, &c.Sources, &c.CreatedAt); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// EnsureAdmin seeds the default admin account when it is absent, mirroring
// the memory store's startup behavior.
func (s *Store) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	const query = `
		INSERT INTO users (id, username, email, password, first_name, last_name, location, role)
		VALUES ($1, 'admin', $2, $3, 'Admin', 'User', 'HQ', 'admin')
		ON CONFLICT (email) DO NOTHING;`
	_, err := s.pool.Exec(ctx, query, uuid.NewString(), email, passwordHash)
	return err
}
