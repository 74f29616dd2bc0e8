// Package memory provides the in-process reference implementation of the
// task repository. It is the store the bundled API serves from; any durable
// backend can replace it by implementing repository.TaskRepository.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-extraction/internal/task/repository"
	pkgLog "task-extraction/pkg/log"
)

// Store is a mutex-guarded, fingerprint-keyed task store. Listing returns
// tasks in reverse insertion order.
type Store struct {
	mu    sync.RWMutex
	byFp  map[string]repository.StoredTask
	order []string // fingerprints in insertion order
	l     pkgLog.Logger
	now   func() time.Time
}

// New creates an empty store.
func New(l pkgLog.Logger) *Store {
	return &Store{
		byFp: make(map[string]repository.StoredTask),
		l:    l,
		now:  time.Now,
	}
}

// Insert persists a task. Inserting a fingerprint that already exists
// returns the existing record unchanged, keeping ingestion idempotent even
// under concurrent callers.
func (s *Store) Insert(ctx context.Context, opt repository.InsertTaskOptions) (repository.StoredTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byFp[opt.Fingerprint]; ok {
		return existing, nil
	}

	stored := repository.StoredTask{
		ID:          uuid.NewString(),
		Fingerprint: opt.Fingerprint,
		Title:       opt.Title,
		Priority:    opt.Priority,
		DueAt:       opt.DueAt,
		Details:     opt.Details,
		SourceType:  opt.SourceType,
		SourceID:    opt.SourceID,
		CreatedAt:   s.now(),
	}

	s.byFp[opt.Fingerprint] = stored
	s.order = append(s.order, opt.Fingerprint)

	s.l.Debugf(ctx, "memory store: inserted task %s fingerprint=%s", stored.ID, stored.Fingerprint)
	return stored, nil
}

// GetByFingerprint returns the task with the given fingerprint or
// repository.ErrNotFound.
func (s *Store) GetByFingerprint(ctx context.Context, fingerprint string) (repository.StoredTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.byFp[fingerprint]
	if !ok {
		return repository.StoredTask{}, repository.ErrNotFound
	}
	return stored, nil
}

// List returns matching tasks newest-first plus the total match count.
func (s *Store) List(ctx context.Context, opt repository.ListTasksOptions) ([]repository.StoredTask, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []repository.StoredTask
	for i := len(s.order) - 1; i >= 0; i-- {
		stored := s.byFp[s.order[i]]
		if opt.SourceType != "" && stored.SourceType != opt.SourceType {
			continue
		}
		if opt.SourceID != "" && stored.SourceID != opt.SourceID {
			continue
		}
		if opt.Priority != "" && stored.Priority != opt.Priority {
			continue
		}
		matched = append(matched, stored)
	}

	total := len(matched)

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	if offset >= total {
		return []repository.StoredTask{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}
