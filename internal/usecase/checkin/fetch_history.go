package checkin

import (
	"context"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

type FetchUserCheckInsHistoryInput struct {
	UserID string
	Page   int
}

type FetchUserCheckInsHistoryOutput struct {
	CheckIns []models.CheckIn
}

type FetchUserCheckInsHistory struct {
	repo domain.Repository
}

func NewFetchUserCheckInsHistory(repo domain.Repository) *FetchUserCheckInsHistory {
	return &FetchUserCheckInsHistory{repo: repo}
}

func (uc *FetchUserCheckInsHistory) Execute(
	ctx context.Context,
	in FetchUserCheckInsHistoryInput,
) (*FetchUserCheckInsHistoryOutput, error) {

	checkIns, err := uc.repo.FindManyByUserID(ctx, in.UserID, in.Page)
	if err != nil {
		return nil, err
	}
	if checkIns == nil {
		checkIns = []models.CheckIn{}
	}

	return &FetchUserCheckInsHistoryOutput{CheckIns: checkIns}, nil
}
