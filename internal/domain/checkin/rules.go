package checkin

import (
	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/paging"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

const (
	// MaxDistanceKm is how far from a gym a user may check in.
	MaxDistanceKm = 0.1

	PageSize = 20
)

// AssertWithinReach fails with MaxDistanceError when user is farther than
// MaxDistanceKm from the gym.
func AssertWithinReach(user geo.Coordinate, g *models.Gym) error {
	distance := geo.DistanceBetween(user, geo.Coordinate{
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
	})

	if distance > MaxDistanceKm {
		return &errs.MaxDistanceError{DistanceKm: distance, MaxKm: MaxDistanceKm}
	}
	return nil
}

// Offset converts a 1-based history page into a row offset. ok is false for
// pages too large to address.
func Offset(page int) (offset int, ok bool) {
	return paging.Offset(page, PageSize)
}
