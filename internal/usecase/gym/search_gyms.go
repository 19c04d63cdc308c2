package gym

import (
	"context"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type SearchGymsInput struct {
	Query string
	Page  int
}

type SearchGymsOutput struct {
	Gyms []models.Gym
}

type SearchGyms struct {
	repo domain.Repository
}

func NewSearchGyms(repo domain.Repository) *SearchGyms {
	return &SearchGyms{repo: repo}
}

func (uc *SearchGyms) Execute(
	ctx context.Context,
	in SearchGymsInput,
) (*SearchGymsOutput, error) {

	gyms, err := uc.repo.SearchMany(ctx, in.Query, in.Page)
	if err != nil {
		return nil, err
	}
	if gyms == nil {
		gyms = []models.Gym{}
	}

	return &SearchGymsOutput{Gyms: gyms}, nil
}
