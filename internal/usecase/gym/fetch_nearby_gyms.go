package gym

import (
	"context"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type FetchNearbyGymsInput struct {
	UserLatitude  float64
	UserLongitude float64
}

type FetchNearbyGymsOutput struct {
	Gyms []models.Gym
}

// FetchNearbyGyms lists gyms within domain.NearbyRadiusKm of the user.
type FetchNearbyGyms struct {
	repo domain.Repository
}

func NewFetchNearbyGyms(repo domain.Repository) *FetchNearbyGyms {
	return &FetchNearbyGyms{repo: repo}
}

func (uc *FetchNearbyGyms) Execute(
	ctx context.Context,
	in FetchNearbyGymsInput,
) (*FetchNearbyGymsOutput, error) {

	gyms, err := uc.repo.FindManyNearby(ctx, geo.Coordinate{
		Latitude:  in.UserLatitude,
		Longitude: in.UserLongitude,
	})
	if err != nil {
		return nil, err
	}
	if gyms == nil {
		gyms = []models.Gym{}
	}

	return &FetchNearbyGymsOutput{Gyms: gyms}, nil
}
