package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

// Store keeps every entity in process memory, guarded by a single RWMutex.
// Records live for the process lifetime; there are no delete operations.
// Each insert records a sequence number so that listings sort ties by
// insertion order, keeping repeated reads identical.
type Store struct {
	mu         sync.RWMutex
	users      map[string]models.User
	articles   map[string]models.Article
	alerts     map[string]models.CivicAlert
	jobs       map[string]models.Job
	factChecks map[string]models.FactCheck
	seq        uint64
	insertedAt map[string]uint64
}

// New returns an empty store. Most callers want NewSeeded.
func New() *Store {
	return &Store{
		users:      make(map[string]models.User),
		articles:   make(map[string]models.Article),
		alerts:     make(map[string]models.CivicAlert),
		jobs:       make(map[string]models.Job),
		factChecks: make(map[string]models.FactCheck),
		insertedAt: make(map[string]uint64),
	}
}

// nextSeq must be called with the write lock held.
func (s *Store) nextSeq(id string) {
	s.seq++
	s.insertedAt[id] = s.seq
}

// before orders two records newest-first by timestamp, falling back to
// insertion order on equal timestamps.
func (s *Store) before(idI, idJ string, timeI, timeJ time.Time) bool {
	if timeI.Equal(timeJ) {
		return s.insertedAt[idI] < s.insertedAt[idJ]
	}
	return timeI.After(timeJ)
}

// GetUser fetches a user by id.
func (s *Store) GetUser(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// GetUserByEmail fetches a user by email address.
func (s *Store) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// GetUserByUsername fetches a user by username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// CreateUser inserts a new user with a fresh id, zeroed counters, and a
// server-side timestamp. Email and username must be unused.
func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	user.ArticlesRead = 0
	user.FactsChecked = 0
	user.BookmarksCount = 0
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return user, nil
}

// UpdateUser merges the non-nil fields of update into the stored record.
func (s *Store) UpdateUser(_ context.Context, id string, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.ArticlesRead != nil {
		user.ArticlesRead = *update.ArticlesRead
	}
	if update.FactsChecked != nil {
		user.FactsChecked = *update.FactsChecked
	}
	if update.BookmarksCount != nil {
		user.BookmarksCount = *update.BookmarksCount
	}
	s.users[id] = user
	return user, nil
}

// GetArticles lists articles newest-first by publishedAt, optionally filtered
// to an exact category, with offset applied after sorting and before limit.
func (s *Store) GetArticles(_ context.Context, limit, offset int, category string) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	articles := make([]models.Article, 0, len(s.articles))
	for _, article := range s.articles {
		if category != "" && article.Category != category {
			continue
		}
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool {
		return s.before(articles[i].ID, articles[j].ID, articles[i].PublishedAt, articles[j].PublishedAt)
	})
	return paginate(articles, limit, offset), nil
}

// GetArticle fetches an article by id.
func (s *Store) GetArticle(_ context.Context, id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	article, ok := s.articles[id]
	if !ok {
		return models.Article{}, storage.ErrNotFound
	}
	return article, nil
}

// CreateArticle inserts a new article with a fresh id and timestamps.
func (s *Store) CreateArticle(_ context.Context, article models.Article) (models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	article.ID = uuid.NewString()
	article.PublishedAt = now
	article.CreatedAt = now
	s.nextSeq(article.ID)
	s.articles[article.ID] = article
	return article, nil
}

// GetCivicAlerts lists active alerts newest-first, up to limit. Inactive
// alerts are never returned.
func (s *Store) GetCivicAlerts(_ context.Context, limit int) ([]models.CivicAlert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	alerts := make([]models.CivicAlert, 0, len(s.alerts))
	for _, alert := range s.alerts {
		if !alert.IsActive {
			continue
		}
		alerts = append(alerts, alert)
	}
	sort.Slice(alerts, func(i, j int) bool {
		return s.before(alerts[i].ID, alerts[j].ID, alerts[i].CreatedAt, alerts[j].CreatedAt)
	})
	return paginate(alerts, limit, 0), nil
}

// CreateCivicAlert inserts a new alert with a fresh id and timestamp.
func (s *Store) CreateCivicAlert(_ context.Context, alert models.CivicAlert) (models.CivicAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert.ID = uuid.NewString()
	alert.CreatedAt = time.Now()
	s.nextSeq(alert.ID)
	s.alerts[alert.ID] = alert
	return alert, nil
}

// GetJobs lists jobs newest-first by postedAt, optionally filtered to an
// exact type, up to limit. Expired jobs are not excluded.
func (s *Store) GetJobs(_ context.Context, limit int, jobType string) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if jobType != "" && job.Type != jobType {
			continue
		}
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return s.before(jobs[i].ID, jobs[j].ID, jobs[i].PostedAt, jobs[j].PostedAt)
	})
	return paginate(jobs, limit, 0), nil
}

// CreateJob inserts a new job with a fresh id and posting timestamp.
func (s *Store) CreateJob(_ context.Context, job models.Job) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = uuid.NewString()
	job.PostedAt = time.Now()
	s.nextSeq(job.ID)
	s.jobs[job.ID] = job
	return job, nil
}

// CreateFactCheck inserts a new fact check with a fresh id and timestamp.
func (s *Store) CreateFactCheck(_ context.Context, check models.FactCheck) (models.FactCheck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	check.ID = uuid.NewString()
	check.CreatedAt = time.Now()
	s.nextSeq(check.ID)
	s.factChecks[check.ID] = check
	return check, nil
}

// GetFactChecksByUser lists one user's fact checks newest-first, unbounded.
func (s *Store) GetFactChecksByUser(_ context.Context, userID string) ([]models.FactCheck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	checks := make([]models.FactCheck, 0)
	for _, check := range s.factChecks {
		if check.UserID == userID {
			checks = append(checks, check)
		}
	}
	sort.Slice(checks, func(i, j int) bool {
		return s.before(checks[i].ID, checks[j].ID, checks[i].CreatedAt, checks[j].CreatedAt)
	})
	return checks, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
