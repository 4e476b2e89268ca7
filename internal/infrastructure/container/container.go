package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	redisclient "github.com/redis/go-redis/v9"

	"github.com/prekshaaaaaaaa/coliving-backend/internal/config"
	httpdelivery "github.com/prekshaaaaaaaa/coliving-backend/internal/delivery/http"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/delivery/http/handler"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/delivery/http/middleware"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/infrastructure/database"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/infrastructure/notify"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/infrastructure/server"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository/postgres"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/auth"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/chat"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/debug"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/identity"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/match"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/preference"
)

// Container wires every layer together.
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redisclient.Client
	Server *server.Server

	Capabilities repository.Capabilities
}

// NewContainer builds the dependency graph: database, one-shot capability
// probe, repositories, use cases, handlers, router, server.
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	probeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	caps, err := postgres.ProbeCapabilities(probeCtx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to probe schema capabilities: %w", err)
	}
	// Configuration can switch a column off even when the schema has it,
	// never the other way around.
	caps.Email = caps.Email && cfg.Identity.EmailEnabled
	caps.ExternalUID = caps.ExternalUID && cfg.Identity.ExternalUIDEnabled
	slog.Info("schema capabilities",
		"email", caps.Email,
		"external_uid", caps.ExternalUID,
		"chat", caps.Chat,
	)

	// Redis is optional; without it fan-out silently no-ops.
	var redisClient *redisclient.Client
	var notifier notify.Notifier = notify.NoOpNotifier{}
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		notifier = notify.NewRedisNotifier(redisClient)
	} else {
		slog.Warn("redis not configured, realtime notifications disabled")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db, caps)
	residentRepo := postgres.NewResidentRepository(db)
	roommateRepo := postgres.NewRoommateRepository(db)
	matchRepo := postgres.NewMatchRepository(db, caps)
	chatRepo := postgres.NewChatRepository(db)
	schemaRepo := postgres.NewSchemaRepository(db)

	// Use cases
	identityUseCase := identity.NewIdentityUseCase(userRepo, caps)
	matchUseCase := match.NewMatchUseCase(identityUseCase, residentRepo, roommateRepo, matchRepo, notifier)
	preferenceUseCase := preference.NewPreferenceUseCase(identityUseCase, residentRepo, roommateRepo)
	chatUseCase := chat.NewChatUseCase(chatRepo, userRepo, identityUseCase, notifier, caps.Chat)
	debugUseCase := debug.NewDebugUseCase(schemaRepo, userRepo, identityUseCase)
	authUseCase := auth.NewAdminAuthUseCase(&cfg.Admin)

	// Handlers
	matchHandler := handler.NewMatchHandler(matchUseCase)
	preferenceHandler := handler.NewPreferenceHandler(preferenceUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)
	debugHandler := handler.NewDebugHandler(debugUseCase)
	authHandler := handler.NewAuthHandler(authUseCase)
	adminMiddleware := middleware.NewAdminMiddleware(authUseCase)

	router := httpdelivery.NewRouter(
		matchHandler,
		preferenceHandler,
		chatHandler,
		debugHandler,
		authHandler,
		adminMiddleware,
	)

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config:       cfg,
		DB:           db,
		Redis:        redisClient,
		Server:       srv,
		Capabilities: caps,
	}, nil
}

// Close releases held connections.
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
