package gym

import (
	"context"

	"github.com/BruksfildServices01/gym-checkin/internal/audit"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateGymInput struct {
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

type CreateGymOutput struct {
	Gym *models.Gym
}

// ======================================================
// USE CASE
// ======================================================

type CreateGym struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateGym(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateGym {
	return &CreateGym{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateGym) Execute(
	ctx context.Context,
	in CreateGymInput,
) (*CreateGymOutput, error) {

	g, err := uc.repo.Create(ctx, domain.CreateInput{
		Title:       in.Title,
		Description: in.Description,
		Phone:       in.Phone,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "gym_created",
		Entity:   "gym",
		EntityID: &g.ID,
		Metadata: map[string]any{"title": g.Title},
	})

	return &CreateGymOutput{Gym: g}, nil
}
