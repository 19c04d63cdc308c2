package gym

import (
	"context"

	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type Repository interface {
	// -------- Write --------
	Create(
		ctx context.Context,
		in CreateInput,
	) (*models.Gym, error)

	// -------- Read --------

	// FindByID returns (nil, nil) when the gym does not exist.
	FindByID(
		ctx context.Context,
		id string,
	) (*models.Gym, error)

	// SearchMany matches query as a case-sensitive substring of the title,
	// in creation order, PageSize items per page.
	SearchMany(
		ctx context.Context,
		query string,
		page int,
	) ([]models.Gym, error)

	// FindManyNearby returns the gyms within NearbyRadiusKm of point.
	FindManyNearby(
		ctx context.Context,
		point geo.Coordinate,
	) ([]models.Gym, error)
}
