package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

const checkInsUserDayIndex = "idx_check_ins_user_day"

type CheckInGormRepository struct {
	db    *gorm.DB
	clock timezone.Clock
}

func NewCheckInGormRepository(db *gorm.DB, clock timezone.Clock) *CheckInGormRepository {
	return &CheckInGormRepository{db: db, clock: clock}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *CheckInGormRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.CheckIn, error) {

	now := r.clock.Now()

	ci := models.CheckIn{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		GymID:       in.GymID,
		CheckInDate: timezone.DateKey(now),
		ValidatedAt: in.ValidatedAt,
		CreatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Omit("User", "Gym").Create(&ci).Error; err != nil {
		// a concurrent check-in won the race for this user and day
		if isUniqueViolation(err, checkInsUserDayIndex) {
			return nil, &errs.MaxNumberOfCheckInsError{}
		}
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	return &ci, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *CheckInGormRepository) FindByUserIDOnDate(
	ctx context.Context,
	userID string,
	date time.Time,
) (*models.CheckIn, error) {

	if _, err := uuid.Parse(userID); err != nil {
		return nil, nil
	}

	start, end := timezone.DayBounds(date)

	var ci models.CheckIn
	err := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND created_at >= ? AND created_at < ?",
			userID, start, end,
		).
		First(&ci).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in on date: %w", err)
	}

	return &ci, nil
}

func (r *CheckInGormRepository) FindManyByUserID(
	ctx context.Context,
	userID string,
	page int,
) ([]models.CheckIn, error) {

	checkIns := []models.CheckIn{}
	if _, err := uuid.Parse(userID); err != nil {
		return checkIns, nil
	}

	offset, ok := domain.Offset(page)
	if !ok {
		return checkIns, nil
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(domain.PageSize).
		Offset(offset).
		Find(&checkIns).Error; err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	return checkIns, nil
}

func (r *CheckInGormRepository) CountByUserID(
	ctx context.Context,
	userID string,
) (int64, error) {

	if _, err := uuid.Parse(userID); err != nil {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CheckIn{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*CheckInGormRepository)(nil)
