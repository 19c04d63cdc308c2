package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterUserOutput struct {
	User *models.User
}

type RegisterUser struct {
	repo domain.Repository
}

func NewRegisterUser(repo domain.Repository) *RegisterUser {
	return &RegisterUser{repo: repo}
}

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterUserInput,
) (*RegisterUserOutput, error) {

	email := normalizeEmail(in.Email)

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &errs.UserAlreadyExistsError{}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := uc.repo.Create(ctx, domain.CreateInput{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return nil, err
	}

	return &RegisterUserOutput{User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
