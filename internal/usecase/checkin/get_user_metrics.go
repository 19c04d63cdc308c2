package checkin

import (
	"context"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
)

type GetUserMetricsInput struct {
	UserID string
}

type GetUserMetricsOutput struct {
	CheckInsCount int64
}

type GetUserMetrics struct {
	repo domain.Repository
}

func NewGetUserMetrics(repo domain.Repository) *GetUserMetrics {
	return &GetUserMetrics{repo: repo}
}

func (uc *GetUserMetrics) Execute(
	ctx context.Context,
	in GetUserMetricsInput,
) (*GetUserMetricsOutput, error) {

	count, err := uc.repo.CountByUserID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	return &GetUserMetricsOutput{CheckInsCount: count}, nil
}
