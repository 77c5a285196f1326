package memory

import (
	"context"
	"sync"
	"time"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

// UserRepository is the in-process user store. All state lives for the
// process lifetime and is lost on restart.
type UserRepository struct {
	mu      sync.Mutex
	users   map[int64]domain.User
	byEmail map[string]int64
	nextID  int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[int64]domain.User),
		byEmail: make(map[string]int64),
	}
}

func (r *UserRepository) Init(ctx context.Context) error {
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return 0, repository.ErrEmailTaken
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := r.users[id]
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}
