package checkin

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/gym-checkin/internal/audit"
	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckInInput struct {
	UserID        string
	GymID         string
	UserLatitude  float64
	UserLongitude float64
}

type CheckInOutput struct {
	CheckIn *models.CheckIn
}

// ======================================================
// USE CASE
// ======================================================

// CheckIn does no locking; the check-in repository's per-day uniqueness
// backstop keeps concurrent calls for one user from committing twice.
type CheckIn struct {
	checkIns domain.Repository
	gyms     gym.Repository
	clock    timezone.Clock
	audit    *audit.Dispatcher
	logger   *slog.Logger
}

func NewCheckIn(
	checkIns domain.Repository,
	gyms gym.Repository,
	clock timezone.Clock,
	audit *audit.Dispatcher,
	logger *slog.Logger,
) *CheckIn {
	return &CheckIn{
		checkIns: checkIns,
		gyms:     gyms,
		clock:    clock,
		audit:    audit,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CheckIn) Execute(
	ctx context.Context,
	in CheckInInput,
) (*CheckInOutput, error) {

	// --------------------------------------------------
	// 1. Gym
	// --------------------------------------------------
	g, err := uc.gyms.FindByID(ctx, in.GymID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &errs.ResourceNotFoundError{Resource: "gym"}
	}

	// --------------------------------------------------
	// 2. Distance
	// --------------------------------------------------
	user := geo.Coordinate{Latitude: in.UserLatitude, Longitude: in.UserLongitude}
	if err := domain.AssertWithinReach(user, g); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. One check-in per day
	// --------------------------------------------------
	existing, err := uc.checkIns.FindByUserIDOnDate(ctx, in.UserID, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &errs.MaxNumberOfCheckInsError{}
	}

	// --------------------------------------------------
	// 4. Commit
	// --------------------------------------------------
	ci, err := uc.checkIns.Create(ctx, domain.CreateInput{
		UserID: in.UserID,
		GymID:  in.GymID,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "check-in created",
		"check_in_id", ci.ID,
		"user_id", ci.UserID,
		"gym_id", ci.GymID,
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "check_in_created",
		Entity:   "check_in",
		EntityID: &ci.ID,
		Metadata: map[string]any{"gym_id": in.GymID},
	})

	return &CheckInOutput{CheckIn: ci}, nil
}
