package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

type UserMemoryRepository struct {
	mu    sync.RWMutex
	items []models.User
	clock timezone.Clock
}

func NewUserMemoryRepository(clock timezone.Clock) *UserMemoryRepository {
	return &UserMemoryRepository{clock: clock}
}

func (r *UserMemoryRepository) Create(
	_ context.Context,
	in domain.CreateInput,
) (*models.User, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Email == in.Email {
			return nil, &errs.UserAlreadyExistsError{}
		}
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		CreatedAt:    r.clock.Now(),
	}
	r.items = append(r.items, u)

	return &u, nil
}

func (r *UserMemoryRepository) FindByID(
	_ context.Context,
	id string,
) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id }), nil
}

func (r *UserMemoryRepository) FindByEmail(
	_ context.Context,
	email string,
) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }), nil
}

func (r *UserMemoryRepository) find(match func(models.User) bool) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if match(r.items[i]) {
			u := r.items[i]
			return &u
		}
	}
	return nil
}

var _ domain.Repository = (*UserMemoryRepository)(nil)
