package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/geo"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
)

const gymKeyPrefix = "gym:"

// CachedGymRepository serves FindByID from redis. Gyms never change after
// creation, so entries only expire by TTL. Redis failures fall through to
// the wrapped repository.
type CachedGymRepository struct {
	next   domain.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedGymRepository(
	next domain.Repository,
	rdb *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedGymRepository {
	return &CachedGymRepository{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *CachedGymRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Gym, error) {

	g, err := r.next.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	r.store(ctx, g)
	return g, nil
}

func (r *CachedGymRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Gym, error) {

	val, err := r.rdb.Get(ctx, gymKeyPrefix+id).Bytes()
	switch {
	case err == nil:
		var g models.Gym
		if jerr := json.Unmarshal(val, &g); jerr == nil {
			return &g, nil
		}
	case !errors.Is(err, redis.Nil):
		r.logger.WarnContext(ctx, "gym cache read failed", "gym_id", id, "error", err)
	}

	g, err := r.next.FindByID(ctx, id)
	if err != nil || g == nil {
		return g, err
	}

	r.store(ctx, g)
	return g, nil
}

func (r *CachedGymRepository) SearchMany(
	ctx context.Context,
	query string,
	page int,
) ([]models.Gym, error) {
	return r.next.SearchMany(ctx, query, page)
}

func (r *CachedGymRepository) FindManyNearby(
	ctx context.Context,
	point geo.Coordinate,
) ([]models.Gym, error) {
	return r.next.FindManyNearby(ctx, point)
}

func (r *CachedGymRepository) store(ctx context.Context, g *models.Gym) {
	b, err := json.Marshal(g)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, gymKeyPrefix+g.ID, b, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "gym cache write failed", "gym_id", g.ID, "error", err)
	}
}

var _ domain.Repository = (*CachedGymRepository)(nil)
