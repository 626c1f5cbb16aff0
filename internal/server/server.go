package server

import (
	"fmt"
	"net/http"

	"voyager-gear/internal/cache"
	"voyager-gear/internal/config"
	"voyager-gear/internal/database"
	custommiddleware "voyager-gear/internal/middleware"
	"voyager-gear/internal/repository"
	"voyager-gear/internal/security"
	"voyager-gear/internal/service"
	"voyager-gear/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const catalogCachePrefix = "catalog:"

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	redis  *redis.Client
}

// NewServer wires repositories, services and handlers into an HTTP server.
// redisClient may be nil, which disables caching and rate limiting.
func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service, redisClient *redis.Client) (*Server, error) {
	router, err := NewRouter(cfg, logger, db, redisClient)
	if err != nil {
		return nil, err
	}

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}, nil
}

// NewRouter builds the full route tree.
func NewRouter(cfg *config.Config, logger *zap.Logger, db database.Service, redisClient *redis.Client) (http.Handler, error) {
	tokens, err := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create token manager: %w", err)
	}

	router := chi.NewRouter()
	router.Use(custommiddleware.DefaultMiddlewareStack(logger)...)
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.IsDevelopment()))

	// Initialize repositories
	sqlDB := db.DB()
	userRepo := repository.NewUserRepository(sqlDB)
	productRepo := repository.NewProductRepository(sqlDB)
	categoryRepo := repository.NewCategoryRepository(sqlDB)
	orderRepo := repository.NewOrderRepository(sqlDB)

	var catalogCache *cache.Cache
	if redisClient != nil {
		catalogCache = cache.New(redisClient, catalogCachePrefix, cfg.Redis.CacheTTL)
	}

	// Initialize services
	accountService := service.NewAccountService(
		userRepo,
		security.NewPasswordHasher(cfg.Security.BcryptCost),
		tokens,
		service.AccountOptions{
			PasswordMinLength: cfg.Security.PasswordMinLength,
			TokenTTL:          cfg.JWT.AccessTTL(),
		},
		logger,
	)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, catalogCache, logger)
	orderService := service.NewOrderService(orderRepo, catalogService, logger)
	authenticator := service.NewAuthenticator(tokens, userRepo)

	authMiddleware := custommiddleware.AuthMiddleware(authenticator, logger)
	apiLimit, credentialLimit := passthrough, passthrough
	if redisClient != nil {
		apiLimit = custommiddleware.RateLimitMiddleware(redisClient,
			custommiddleware.PerMinute(cfg.RateLimit.PerMinute, "ratelimit:api"), logger)
		credentialLimit = custommiddleware.RateLimitMiddleware(redisClient,
			custommiddleware.PerMinute(cfg.RateLimit.AuthPerMinute, "ratelimit:auth"), logger)
	}

	transport.NewHealthHandler(cfg.App, db).RegisterRoutes(router)

	router.Route("/api", func(r chi.Router) {
		r.Use(apiLimit)
		transport.NewAuthHandler(accountService, logger).RegisterRoutes(r, authMiddleware, credentialLimit)
		transport.NewProductHandler(catalogService, logger).RegisterRoutes(r)
		transport.NewOrderHandler(orderService, logger).RegisterRoutes(r, authMiddleware)
	})

	return router, nil
}

func passthrough(next http.Handler) http.Handler { return next }

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
