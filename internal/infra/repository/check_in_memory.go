package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

// CheckInMemoryRepository mirrors the postgres unique index on
// (user_id, check_in_date): Create refuses a second check-in per user and day.
type CheckInMemoryRepository struct {
	mu    sync.RWMutex
	items []models.CheckIn
	clock timezone.Clock
}

func NewCheckInMemoryRepository(clock timezone.Clock) *CheckInMemoryRepository {
	return &CheckInMemoryRepository{clock: clock}
}

func (r *CheckInMemoryRepository) Create(
	_ context.Context,
	in domain.CreateInput,
) (*models.CheckIn, error) {

	now := r.clock.Now()
	day := timezone.DateKey(now)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ci := range r.items {
		if ci.UserID == in.UserID && ci.CheckInDate == day {
			return nil, &errs.MaxNumberOfCheckInsError{}
		}
	}

	ci := models.CheckIn{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		GymID:       in.GymID,
		CheckInDate: day,
		ValidatedAt: in.ValidatedAt,
		CreatedAt:   now,
	}
	r.items = append(r.items, ci)

	return &ci, nil
}

func (r *CheckInMemoryRepository) FindByUserIDOnDate(
	_ context.Context,
	userID string,
	date time.Time,
) (*models.CheckIn, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		ci := r.items[i]
		if ci.UserID == userID && timezone.SameDay(ci.CreatedAt, date) {
			return &ci, nil
		}
	}
	return nil, nil
}

func (r *CheckInMemoryRepository) FindManyByUserID(
	_ context.Context,
	userID string,
	page int,
) ([]models.CheckIn, error) {

	offset, ok := domain.Offset(page)
	if !ok {
		return []models.CheckIn{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var mine []models.CheckIn
	for _, ci := range r.items {
		if ci.UserID == userID {
			mine = append(mine, ci)
		}
	}

	return window(mine, offset, domain.PageSize), nil
}

func (r *CheckInMemoryRepository) CountByUserID(
	_ context.Context,
	userID string,
) (int64, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, ci := range r.items {
		if ci.UserID == userID {
			n++
		}
	}
	return n, nil
}

var _ domain.Repository = (*CheckInMemoryRepository)(nil)
