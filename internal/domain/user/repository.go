package user

import (
	"context"

	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type CreateInput struct {
	Name         string
	Email        string
	PasswordHash string
}

// Repository lookups return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
