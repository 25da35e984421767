// Package memory 用户与会话的内存仓储
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/novamart/storefront/internal/user/domain"
)

type userRepository struct {
	mu    sync.RWMutex
	order []string
	users map[string]*domain.User
}

// NewUserRepository 创建预置演示账户的内存用户仓储
func NewUserRepository() domain.UserRepository {
	repo := &userRepository{users: make(map[string]*domain.User)}
	for _, u := range fixtureUsers() {
		repo.order = append(repo.order, u.ID)
		repo.users[u.ID] = u
	}
	return repo
}

func fixtureUsers() []*domain.User {
	return []*domain.User{
		{
			ID:         "U1",
			Name:       "John Doe",
			Email:      "john@nova.com",
			Role:       domain.RoleAdmin,
			JoinDate:   "2023-01-10",
			Status:     domain.StatusActive,
			Department: "Management",
		},
		{
			ID:       "U2",
			Name:     "Sarah Wilson",
			Email:    "sarah@example.com",
			Role:     domain.RoleUser,
			JoinDate: "2024-05-15",
			Status:   domain.StatusActive,
		},
	}
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.users[id]
		out = append(out, &clone)
	}
	return out, nil
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionRepository 创建内存会话仓储
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{sessions: make(map[string]*domain.Session)}
}

func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *session
	r.sessions[session.Token] = &clone
	return nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[token]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, token)
	return nil
}
