package repository

import (
	"context"
	"sync"

	"fleetwatch-service/internal/domain/entity"
	"fleetwatch-service/internal/domain/repository"
)

// MemorySessionRepository keeps sessions in process memory. Expired sessions
// are dropped lazily on lookup.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]entity.Session
	opts     options
}

// NewMemorySessionRepository creates an empty session repository
func NewMemorySessionRepository(opts ...Option) repository.SessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[string]entity.Session),
		opts:     buildOptions(opts),
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *MemorySessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if session.Expired(r.opts.now()) {
		delete(r.sessions, id)
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
