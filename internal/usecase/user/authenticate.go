package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type AuthenticateInput struct {
	Email    string
	Password string
}

type AuthenticateOutput struct {
	User *models.User
}

type Authenticate struct {
	repo domain.Repository
}

func NewAuthenticate(repo domain.Repository) *Authenticate {
	return &Authenticate{repo: repo}
}

// Execute fails with the same InvalidCredentialsError for an unknown
// e-mail and a wrong password.
func (uc *Authenticate) Execute(
	ctx context.Context,
	in AuthenticateInput,
) (*AuthenticateOutput, error) {

	u, err := uc.repo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &errs.InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, &errs.InvalidCredentialsError{}
	}

	return &AuthenticateOutput{User: u}, nil
}
