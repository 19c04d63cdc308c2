package user

import (
	"context"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type GetUserProfileInput struct {
	UserID string
}

type GetUserProfileOutput struct {
	User *models.User
}

type GetUserProfile struct {
	repo domain.Repository
}

func NewGetUserProfile(repo domain.Repository) *GetUserProfile {
	return &GetUserProfile{repo: repo}
}

func (uc *GetUserProfile) Execute(
	ctx context.Context,
	in GetUserProfileInput,
) (*GetUserProfileOutput, error) {

	u, err := uc.repo.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &errs.ResourceNotFoundError{Resource: "user"}
	}

	return &GetUserProfileOutput{User: u}, nil
}
