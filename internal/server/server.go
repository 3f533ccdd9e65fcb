package server

import (
	"fmt"
	"net/http"
	"time"

	"fashion-store/internal/analytics"
	"fashion-store/internal/catalog"
	"fashion-store/internal/cart"
	"fashion-store/internal/config"
	custommiddleware "fashion-store/internal/middleware"
	"fashion-store/internal/prefs"
	"fashion-store/internal/repository"
	"fashion-store/internal/service"
	"fashion-store/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config   *config.Config
	logger   *zap.Logger
	sessions *cart.Manager
	redis    *redis.Client
}

// NewServer wires the storefront together: catalogue, per-session carts,
// preferences, checkout, accounts and analytics behind a chi router.
// redisClient may be nil, in which case preferences fall back to memory and
// rate limiting is disabled.
func NewServer(cfg *config.Config, logger *zap.Logger, cat *catalog.Catalog, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
			KeyPrefix:         "rate_limit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Shared state
	sessions := cart.NewManager(time.Duration(cfg.Cart.SessionTTLMinutes) * time.Minute)
	recorder := analytics.NewRecorder(1000, logger)

	var prefStore prefs.Store
	if redisClient != nil {
		prefStore = prefs.NewRedisStore(redisClient, "prefs")
	} else {
		prefStore = prefs.NewMemoryStore()
	}
	prefDefaults := prefs.Preferences{
		Locale:   cfg.Locale.DefaultLocale,
		Currency: cfg.Locale.DefaultCurrency,
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	refreshTokenRepo := repository.NewRefreshTokenRepository()

	// Initialize services
	userService := service.NewUserService(userRepo, refreshTokenRepo, cfg.JWT.Secret)
	checkoutService := service.NewCheckoutService(recorder, logger)

	// Initialize handlers
	productHandler := transport.NewProductHandler(cat, recorder, logger)
	cartHandler := transport.NewCartHandler(cat, prefStore, prefDefaults, recorder, logger)
	checkoutHandler := transport.NewCheckoutHandler(checkoutService, recorder, logger)
	prefsHandler := transport.NewPreferencesHandler(prefStore, prefDefaults, logger)
	userHandler := transport.NewUserHandler(userService, logger)
	analyticsHandler := transport.NewAnalyticsHandler(recorder)

	sessionMiddleware := custommiddleware.CartSessionMiddleware(sessions, logger)
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	adminMiddleware := custommiddleware.RequireAdmin(logger)

	// Register routes
	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router, sessionMiddleware)
	checkoutHandler.RegisterRoutes(router, sessionMiddleware)
	prefsHandler.RegisterRoutes(router, sessionMiddleware)
	userHandler.RegisterRoutes(router, authMiddleware)
	analyticsHandler.RegisterRoutes(router, authMiddleware, adminMiddleware)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:   cfg,
		logger:   logger,
		sessions: sessions,
		redis:    redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Stop the session janitor; carts are in-memory only and die here.
	s.sessions.Close()

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
