package gym

import (
	"strings"

	"github.com/BruksfildServices01/gym-checkin/internal/domain/errs"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/paging"
)

const (
	PageSize       = 20
	NearbyRadiusKm = 10.0
)

type CreateInput struct {
	Title       string
	Description *string
	Phone       *string
	Latitude    float64
	Longitude   float64
}

// Validate holds the rules every Repository enforces on Create.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &errs.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return &errs.ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return &errs.ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}
	return nil
}

// Offset converts a 1-based page into a row offset; pages below 1 read as 1.
// ok is false for pages too large to address, which hold no gyms.
func Offset(page int) (offset int, ok bool) {
	return paging.Offset(page, PageSize)
}
