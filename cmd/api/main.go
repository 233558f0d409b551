package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/config"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/handlers"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/middleware"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/repository"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/services"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/db"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/httpclient"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/jwt"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/metrics"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/profiling"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/storage"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/tracing"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/trigger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// apiHandlers bundles everything the route table needs
type apiHandlers struct {
	auth         *handlers.AuthHandler
	mentor       *handlers.MentorHandler
	mentee       *handlers.MenteeHandler
	group        *handlers.GroupHandler
	relationship *handlers.RelationshipHandler
	slot         *handlers.SlotHandler
	sessionLog   *handlers.SessionLogHandler
	invite       *handlers.InviteHandler
	health       *handlers.HealthHandler
}

// registerRoutes declares the full route table. Role gating lives here, in
// one place: every protected group is wrapped by Authenticate plus a
// RequireRoles allowlist.
func registerRoutes(
	router *gin.Engine,
	h *apiHandlers,
	tokenManager *jwt.TokenManager,
	generalLimiter, authLimiter *middleware.RateLimiter,
) {
	authn := middleware.Authenticate(tokenManager)

	mentorOrAdmin := middleware.RequireRoles(models.RoleMentor, models.RoleAdmin)
	menteeOrAdmin := middleware.RequireRoles(models.RoleMentee, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// Operational endpoints
	ops := router.Group("/api")
	ops.GET("/healthcheck", generalLimiter.Middleware(), h.health.Healthcheck)
	ops.GET("/metrics", generalLimiter.Middleware(),
		gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(generalLimiter.Middleware())

	// Auth (public, tighter limits on credential endpoints)
	auth := api.Group("/auth")
	auth.POST("/register", authLimiter.Middleware(), h.auth.Register)
	auth.POST("/login", authLimiter.Middleware(), h.auth.Login)
	auth.POST("/refresh", authLimiter.Middleware(), h.auth.Refresh)
	auth.POST("/logout", authn, h.auth.Logout)
	auth.GET("/profile", authn, h.auth.Profile)

	// Mentor directory is public; writes are role-gated
	api.GET("/mentors", middleware.OptionalAuth(tokenManager), h.mentor.List)
	api.GET("/mentors/:id", middleware.OptionalAuth(tokenManager), h.mentor.Get)
	api.POST("/mentors", authn, mentorOrAdmin, h.mentor.Create)
	api.PATCH("/mentors/:id", authn, mentorOrAdmin, h.mentor.Update)
	api.DELETE("/mentors/:id", authn, adminOnly, h.mentor.Delete)
	api.PATCH("/mentors/:id/mentees/:menteeId", authn, mentorOrAdmin, h.relationship.AssignMentee)
	api.DELETE("/mentors/:id/mentees/:menteeId", authn, mentorOrAdmin, h.relationship.UnassignMentee)

	// Mentees
	api.GET("/mentees", authn, mentorOrAdmin, h.mentee.List)
	api.GET("/mentees/:id", authn, h.mentee.Get)
	api.POST("/mentees", authn, menteeOrAdmin, h.mentee.Create)
	api.PATCH("/mentees/:id", authn, h.mentee.Update)
	api.DELETE("/mentees/:id", authn, adminOnly, h.mentee.Delete)

	// Groups
	api.GET("/groups", authn, h.group.List)
	api.GET("/groups/:id", authn, h.group.Get)
	api.POST("/groups", authn, mentorOrAdmin, h.group.Create)
	api.PATCH("/groups/:id", authn, mentorOrAdmin, h.group.Update)
	api.DELETE("/groups/:id", authn, adminOnly, h.group.Delete)
	api.POST("/groups/:id/mentees/:menteeId", authn, mentorOrAdmin, h.relationship.JoinGroup)
	api.DELETE("/groups/:id/mentees/:menteeId", authn, mentorOrAdmin, h.relationship.LeaveGroup)

	// Slots
	api.GET("/slots", authn, h.slot.List)
	api.POST("/slots", authn, mentorOrAdmin, h.slot.Create)
	api.PATCH("/slots/:id/book", authn, menteeOrAdmin, h.slot.Book)
	api.DELETE("/slots/:id", authn, mentorOrAdmin, h.slot.Delete)

	// Session logs
	api.POST("/session-logs", authn, mentorOrAdmin, h.sessionLog.Upsert)
	api.GET("/session-logs", authn, mentorOrAdmin, h.sessionLog.List)
	api.GET("/session-logs/needs-support", authn, adminOnly, h.sessionLog.NeedsSupport)
	api.GET("/session-logs/export", authn, adminOnly, h.sessionLog.Export)

	// Invites: creation is admin-only, token validation is public so the
	// registration page can pre-fill email and role
	api.POST("/invites", authn, adminOnly, h.invite.Create)
	api.GET("/invites", authn, adminOnly, h.invite.List)
	api.GET("/invites/validate/:token", h.invite.Validate)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Mentor Hub API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.ExporterEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Error("Failed to initialize profiler", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	metrics.Init(cfg.Observability.ServiceName)
	metrics.RecordInfrastructureMetrics()

	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// Migrations run separately via the migrate command

	var storageClient *storage.Client
	if cfg.ObjectStorage.AccessKeyID != "" && cfg.ObjectStorage.SecretAccessKey != "" {
		storageClient, err = storage.NewClient(
			cfg.ObjectStorage.AccessKeyID,
			cfg.ObjectStorage.SecretAccessKey,
			cfg.ObjectStorage.BucketName,
			cfg.ObjectStorage.Endpoint,
			cfg.ObjectStorage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize object storage client", zap.Error(err))
		}
	}

	tokenManager := jwt.NewTokenManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.RefreshSecret,
		cfg.Auth.JWTIssuer,
		cfg.Auth.AccessTTLHours,
		cfg.Auth.RefreshTTLHours,
	)

	httpClient := httpclient.NewStandardClient()
	notifier := trigger.NewNotifier(httpClient)

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	mentorRepo := repository.NewMentorRepository(pool)
	menteeRepo := repository.NewMenteeRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	relationshipRepo := repository.NewRelationshipRepository(pool)
	slotRepo := repository.NewSlotRepository(pool)
	sessionLogRepo := repository.NewSessionLogRepository(pool)
	inviteRepo := repository.NewInviteRepository(pool)

	// Services
	authService := services.NewAuthService(userRepo, inviteRepo, tokenManager, cfg)
	mentorService := services.NewMentorService(mentorRepo, userRepo)
	menteeService := services.NewMenteeService(menteeRepo)
	groupService := services.NewGroupService(groupRepo, mentorRepo)
	relationshipService := services.NewRelationshipService(relationshipRepo, mentorRepo, groupRepo)
	slotService := services.NewSlotService(slotRepo, mentorRepo, menteeRepo, notifier, cfg)
	sessionLogService := services.NewSessionLogService(sessionLogRepo, mentorRepo, storageClient)
	inviteService := services.NewInviteService(inviteRepo, notifier, cfg)

	// Handlers
	h := &apiHandlers{
		auth:         handlers.NewAuthHandler(authService),
		mentor:       handlers.NewMentorHandler(mentorService),
		mentee:       handlers.NewMenteeHandler(menteeService),
		group:        handlers.NewGroupHandler(groupService),
		relationship: handlers.NewRelationshipHandler(relationshipService),
		slot:         handlers.NewSlotHandler(slotService),
		sessionLog:   handlers.NewSessionLogHandler(sessionLogService),
		invite:       handlers.NewInviteHandler(inviteService),
		health:       handlers.NewHealthHandler(pool.Ping),
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.Observability())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.BodySizeLimit(1 * 1024 * 1024))

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	generalLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authLimiter := middleware.NewRateLimiter(1, 5)        // credential endpoints: 1 req/sec, burst of 5

	registerRoutes(router, h, tokenManager, generalLimiter, authLimiter)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
