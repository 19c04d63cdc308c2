package checkin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type CreateInput struct {
	UserID      string
	GymID       string
	ValidatedAt *time.Time
}

type Repository interface {
	// -------- Write --------

	// Create stamps CreatedAt with the repository clock.
	Create(
		ctx context.Context,
		in CreateInput,
	) (*models.CheckIn, error)

	// -------- Read --------

	// FindByUserIDOnDate returns the user's check-in created on the calendar
	// day of date (read in date's location), or (nil, nil).
	FindByUserIDOnDate(
		ctx context.Context,
		userID string,
		date time.Time,
	) (*models.CheckIn, error)

	FindManyByUserID(
		ctx context.Context,
		userID string,
		page int,
	) ([]models.CheckIn, error)

	CountByUserID(
		ctx context.Context,
		userID string,
	) (int64, error)
}
