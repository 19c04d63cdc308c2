package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/infra/repository"
	"github.com/BruksfildServices01/gym-checkin/internal/models"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
)

// countingRepo counts FindByID calls that reach the backing store.
type countingRepo struct {
	domain.Repository
	finds int
}

func (r *countingRepo) FindByID(ctx context.Context, id string) (*models.Gym, error) {
	r.finds++
	return r.Repository.FindByID(ctx, id)
}

func newCachedRepo(t *testing.T) (*CachedGymRepository, *countingRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	backing := &countingRepo{Repository: repository.NewGymMemoryRepository(timezone.ClockFunc(time.Now))}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCachedGymRepository(backing, rdb, time.Minute, logger), backing, mr
}

func TestCachedGymRepositoryServesFromCache(t *testing.T) {
	repo, backing, mr := newCachedRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateInput{Title: "Cached Gym", Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	assert.True(t, mr.Exists(gymKeyPrefix+created.ID))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Cached Gym", found.Title)
	assert.Equal(t, 0, backing.finds)
}

func TestCachedGymRepositoryFillsOnMiss(t *testing.T) {
	repo, backing, mr := newCachedRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateInput{Title: "Cached Gym", Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	mr.FlushAll()

	_, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, backing.finds)
	assert.True(t, mr.Exists(gymKeyPrefix+created.ID))
}

func TestCachedGymRepositoryMissingGym(t *testing.T) {
	repo, _, mr := newCachedRepo(t)

	found, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.False(t, mr.Exists(gymKeyPrefix+"missing"))
}

func TestCachedGymRepositoryFallsBackWhenRedisIsDown(t *testing.T) {
	repo, backing, mr := newCachedRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateInput{Title: "Cached Gym", Latitude: 1, Longitude: 2})
	require.NoError(t, err)
	mr.Close()

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 1, backing.finds)
}
