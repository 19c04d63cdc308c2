package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

// GymMemoryRepository keeps gyms in insertion order.
type GymMemoryRepository struct {
	mu    sync.RWMutex
	items []models.Gym
	clock timezone.Clock
}

func NewGymMemoryRepository(clock timezone.Clock) *GymMemoryRepository {
	return &GymMemoryRepository{clock: clock}
}

func (r *GymMemoryRepository) Create(
	_ context.Context,
	in domain.CreateInput,
) (*models.Gym, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	g := models.Gym{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Phone:       in.Phone,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CreatedAt:   r.clock.Now(),
	}

	r.mu.Lock()
	r.items = append(r.items, g)
	r.mu.Unlock()

	return &g, nil
}

func (r *GymMemoryRepository) FindByID(
	_ context.Context,
	id string,
) (*models.Gym, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			g := r.items[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (r *GymMemoryRepository) SearchMany(
	_ context.Context,
	query string,
	page int,
) ([]models.Gym, error) {

	offset, ok := domain.Offset(page)
	if !ok {
		return []models.Gym{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Gym
	for _, g := range r.items {
		if strings.Contains(g.Title, query) {
			matches = append(matches, g)
		}
	}

	return window(matches, offset, domain.PageSize), nil
}

func (r *GymMemoryRepository) FindManyNearby(
	_ context.Context,
	point geo.Coordinate,
) ([]models.Gym, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	return filterNearby(r.items, point), nil
}

// window copies items[offset:offset+size], clipped; never nil.
func window[T any](items []T, offset, size int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if size < end-offset {
		end = offset + size
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

var _ domain.Repository = (*GymMemoryRepository)(nil)
