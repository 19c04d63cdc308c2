package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-checkin/internal/audit"
	"github.com/BruksfildServices01/gym-checkin/internal/config"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/checkin"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/gym"
	"github.com/BruksfildServices01/gym-checkin/internal/domain/user"
	"github.com/BruksfildServices01/gym-checkin/internal/handlers"
	"github.com/BruksfildServices01/gym-checkin/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/gym-checkin/internal/infra/repository"
	"github.com/BruksfildServices01/gym-checkin/internal/middleware"
	"github.com/BruksfildServices01/gym-checkin/internal/timezone"
	ucCheckIn "github.com/BruksfildServices01/gym-checkin/internal/usecase/checkin"
	ucGym "github.com/BruksfildServices01/gym-checkin/internal/usecase/gym"
	ucUser "github.com/BruksfildServices01/gym-checkin/internal/usecase/user"
)

type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client // nil disables the gym cache
	Config *config.Config
	Logger *slog.Logger
	Clock  timezone.Clock
}

// Repositories is everything the handlers need from storage.
type Repositories struct {
	Gyms      gym.Repository
	CheckIns  checkin.Repository
	Users     user.Repository
	AuditLogs handlers.AuditLogReader
}

type Handlers struct {
	Auth      *handlers.AuthHandler
	Gym       *handlers.GymHandler
	CheckIn   *handlers.CheckInHandler
	AuditLogs *handlers.AuditLogsHandler
}

// RegisterRoutes wires the postgres-backed stack onto r. The returned
// dispatcher must be closed on shutdown to flush pending audit events.
func RegisterRoutes(r *gin.Engine, d Deps) *audit.Dispatcher {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var gyms gym.Repository = infraRepo.NewGymGormRepository(d.DB, d.Clock)
	if d.Redis != nil {
		gyms = cache.NewCachedGymRepository(gyms, d.Redis, d.Config.GymCacheTTL, d.Logger)
	}

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Logger)

	repos := Repositories{
		Gyms:      gyms,
		CheckIns:  infraRepo.NewCheckInGormRepository(d.DB, d.Clock),
		Users:     infraRepo.NewUserGormRepository(d.DB, d.Clock),
		AuditLogs: auditLogger,
	}

	Mount(r, NewHandlers(repos, auditDispatcher, d.Config, d.Logger, d.Clock), d.Config)

	return auditDispatcher
}

func NewHandlers(
	repos Repositories,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
	logger *slog.Logger,
	clock timezone.Clock,
) Handlers {

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucUser.NewRegisterUser(repos.Users)
	authenticateUC := ucUser.NewAuthenticate(repos.Users)
	profileUC := ucUser.NewGetUserProfile(repos.Users)

	createGymUC := ucGym.NewCreateGym(repos.Gyms, dispatcher)
	searchGymsUC := ucGym.NewSearchGyms(repos.Gyms)
	nearbyGymsUC := ucGym.NewFetchNearbyGyms(repos.Gyms)

	checkInUC := ucCheckIn.NewCheckIn(repos.CheckIns, repos.Gyms, clock, dispatcher, logger)
	historyUC := ucCheckIn.NewFetchUserCheckInsHistory(repos.CheckIns)
	metricsUC := ucCheckIn.NewGetUserMetrics(repos.CheckIns)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	return Handlers{
		Auth:      handlers.NewAuthHandler(registerUC, authenticateUC, profileUC, cfg),
		Gym:       handlers.NewGymHandler(createGymUC, searchGymsUC, nearbyGymsUC),
		CheckIn:   handlers.NewCheckInHandler(checkInUC, historyUC, metricsUC),
		AuditLogs: handlers.NewAuditLogsHandler(repos.AuditLogs, clock),
	}
}

func Mount(r *gin.Engine, h Handlers, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/users", h.Auth.Register)
		api.POST("/sessions", h.Auth.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", h.Auth.Me)
			secured.GET("/me/audit-logs", h.AuditLogs.List)

			secured.POST("/gyms", h.Gym.Create)
			secured.GET("/gyms/search", h.Gym.Search)
			secured.GET("/gyms/nearby", h.Gym.Nearby)

			secured.POST("/gyms/:gymId/check-ins", h.CheckIn.Create)
			secured.GET("/check-ins/history", h.CheckIn.History)
			secured.GET("/check-ins/metrics", h.CheckIn.Metrics)
		}
	}
}
