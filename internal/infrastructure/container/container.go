package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vivahsetu/matrimony-backend/internal/config"
	httpdelivery "github.com/vivahsetu/matrimony-backend/internal/delivery/http"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/handler"
	"github.com/vivahsetu/matrimony-backend/internal/delivery/http/middleware"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/database"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/gemini"
	"github.com/vivahsetu/matrimony-backend/internal/infrastructure/server"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
	"github.com/vivahsetu/matrimony-backend/internal/repository/postgres"
	redisrepo "github.com/vivahsetu/matrimony-backend/internal/repository/redis"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/interest"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/profile"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config

	DB          *sqlx.DB
	RedisClient *goredis.Client

	ProfileRepo   repository.ProfileRepository
	InterestRepo  repository.InterestRepository
	InterestCache repository.InterestCache

	GeminiClient *gemini.Client

	MatchUseCase    *match.MatchUseCase
	InterestUseCase *interest.InterestUseCase
	ProfileUseCase  *profile.ProfileUseCase

	Server *server.Server
}

// NewContainer creates and initializes all dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	c.DB = db

	// Redis is a cache in front of the interest tables, not a source
	// of truth. A missing Redis degrades to repo reads on every call.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		fmt.Printf("⚠️  Redis unavailable, interest caching disabled: %v\n", err)
	} else {
		c.RedisClient = redisClient
		c.InterestCache = redisrepo.NewInterestCache(redisClient)
	}

	c.ProfileRepo = postgres.NewProfileRepository(db)
	c.InterestRepo = postgres.NewInterestRepository(db)

	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			fmt.Printf("⚠️  Gemini unavailable, connection notes use fallback text: %v\n", err)
		} else {
			c.GeminiClient = geminiClient
		}
	}

	c.MatchUseCase = match.NewMatchUseCase(
		c.ProfileRepo,
		c.InterestRepo,
		c.InterestCache,
		cfg.Match.NewProfileWindow(),
		cfg.Match.PageSize,
	)
	c.InterestUseCase = interest.NewInterestUseCase(
		c.InterestRepo,
		c.ProfileRepo,
		c.InterestCache,
		c.GeminiClient,
	)
	c.ProfileUseCase = profile.NewProfileUseCase(c.ProfileRepo)

	matchHandler := handler.NewMatchHandler(c.MatchUseCase)
	interestHandler := handler.NewInterestHandler(c.InterestUseCase)
	profileHandler := handler.NewProfileHandler(c.ProfileUseCase)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)

	router := httpdelivery.SetupRouter(matchHandler, interestHandler, profileHandler, authMiddleware)
	c.Server = server.NewServer(&cfg.Server, router)

	return c, nil
}

// Close closes all connections.
func (c *Container) Close() error {
	var firstErr error

	if c.GeminiClient != nil {
		c.GeminiClient.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
