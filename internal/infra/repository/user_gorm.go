package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

type UserGormRepository struct {
	db    *gorm.DB
	clock timezone.Clock
}

func NewUserGormRepository(db *gorm.DB, clock timezone.Clock) *UserGormRepository {
	return &UserGormRepository{db: db, clock: clock}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.User, error) {

	u := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		CreatedAt:    r.clock.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if isUniqueViolation(err, "") {
			return nil, &errs.UserAlreadyExistsError{}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}

func (r *UserGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserGormRepository) findOne(
	ctx context.Context,
	where string,
	arg any,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).Where(where, arg).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
