package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

// kilometers per degree of latitude, same constant chain as geo.DistanceBetween
const kmPerDegree = 60 * 1.1515 * 1.609344

type GymGormRepository struct {
	db    *gorm.DB
	clock timezone.Clock
}

func NewGymGormRepository(db *gorm.DB, clock timezone.Clock) *GymGormRepository {
	return &GymGormRepository{db: db, clock: clock}
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *GymGormRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Gym, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	g := models.Gym{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Phone:       in.Phone,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		CreatedAt:   r.clock.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, fmt.Errorf("failed to create gym: %w", err)
	}
	return &g, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *GymGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Gym, error) {

	// ids are uuid columns; anything else cannot match
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	var g models.Gym
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gym: %w", err)
	}
	return &g, nil
}

func (r *GymGormRepository) SearchMany(
	ctx context.Context,
	query string,
	page int,
) ([]models.Gym, error) {

	gyms := []models.Gym{}

	offset, ok := domain.Offset(page)
	if !ok {
		return gyms, nil
	}

	// strpos keeps the match case-sensitive and free of LIKE wildcards
	if err := r.db.WithContext(ctx).
		Where("strpos(title, ?) > 0", query).
		Order("created_at ASC").
		Order("id ASC").
		Limit(domain.PageSize).
		Offset(offset).
		Find(&gyms).Error; err != nil {
		return nil, fmt.Errorf("failed to search gyms: %w", err)
	}

	return gyms, nil
}

func (r *GymGormRepository) FindManyNearby(
	ctx context.Context,
	point geo.Coordinate,
) ([]models.Gym, error) {

	latDelta := domain.NearbyRadiusKm / kmPerDegree

	q := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", point.Latitude-latDelta, point.Latitude+latDelta)

	// longitude degrees shrink towards the poles; skip the box there
	if cosLat := math.Cos(point.Latitude * math.Pi / 180); cosLat > 0.01 {
		ranges := longitudeRanges(point.Longitude, latDelta/cosLat)
		switch len(ranges) {
		case 1:
			q = q.Where("longitude BETWEEN ? AND ?", ranges[0][0], ranges[0][1])
		case 2:
			q = q.Where(
				"(longitude BETWEEN ? AND ? OR longitude BETWEEN ? AND ?)",
				ranges[0][0], ranges[0][1], ranges[1][0], ranges[1][1],
			)
		}
	}

	var candidates []models.Gym
	if err := q.
		Order("created_at ASC").
		Order("id ASC").
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list nearby gyms: %w", err)
	}

	return filterNearby(candidates, point), nil
}

// longitudeRanges returns the [min, max] longitude intervals within delta
// degrees of lon. A window crossing the antimeridian is split in two; a
// window covering the whole circle yields no interval at all.
func longitudeRanges(lon, delta float64) [][2]float64 {
	if delta >= 180 {
		return nil
	}

	lo, hi := lon-delta, lon+delta
	switch {
	case lo < -180:
		return [][2]float64{{lo + 360, 180}, {-180, hi}}
	case hi > 180:
		return [][2]float64{{lo, 180}, {-180, hi - 360}}
	default:
		return [][2]float64{{lo, hi}}
	}
}

func filterNearby(gyms []models.Gym, point geo.Coordinate) []models.Gym {
	out := make([]models.Gym, 0, len(gyms))
	for _, g := range gyms {
		d := geo.DistanceBetween(point, geo.Coordinate{Latitude: g.Latitude, Longitude: g.Longitude})
		if d <= domain.NearbyRadiusKm {
			out = append(out, g)
		}
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*GymGormRepository)(nil)
