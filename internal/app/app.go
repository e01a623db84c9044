package app

import (
	"chef_brigade_backend/internal/config"
	"chef_brigade_backend/internal/controller"
	"chef_brigade_backend/internal/repository"
	"chef_brigade_backend/internal/service"
	"chef_brigade_backend/pkg/database"
	"chef_brigade_backend/pkg/logger"
	"chef_brigade_backend/pkg/monitoring"
	"chef_brigade_backend/pkg/security"
	"chef_brigade_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	DB        *gorm.DB
	Redis     *redis.Client
	services  *services
	scheduler *cron.Cron
}

type repositories struct {
	user         *repository.UserRepository
	journal      *repository.JournalRepository
	journalCache *repository.JournalCache
	prompt       *repository.PromptRepository
	course       *repository.CourseRepository
	progress     *repository.ProgressRepository
	post         *repository.PostRepository
	comment      *repository.CommentRepository
	broadcast    *repository.BroadcastRepository
	notification *repository.NotificationRepository
	subscription *repository.SubscriptionRepository
	analytics    *repository.AnalyticsRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	journal   *service.JournalService
	course    *service.CourseService
	feed      *service.FeedService
	broadcast *service.BroadcastService
	analytics *service.AnalyticsService
	billing   *service.BillingService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	journal   *controller.JournalController
	course    *controller.CourseController
	feed      *controller.FeedController
	broadcast *controller.BroadcastController
	analytics *controller.AnalyticsController
	billing   *controller.BillingController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		journal:      repository.NewJournalRepository(db),
		journalCache: repository.NewJournalCache(rdb),
		prompt:       repository.NewPromptRepository(db),
		course:       repository.NewCourseRepository(db),
		progress:     repository.NewProgressRepository(db),
		post:         repository.NewPostRepository(db),
		comment:      repository.NewCommentRepository(db),
		broadcast:    repository.NewBroadcastRepository(db),
		notification: repository.NewNotificationRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		analytics:    repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.journal = service.NewJournalService(repos.journal, repos.journalCache, repos.prompt)
	s.course = service.NewCourseService(repos.course, repos.progress)
	s.feed = service.NewFeedService(repos.post, repos.comment, repos.user, rdb)
	s.broadcast = service.NewBroadcastService(repos.broadcast, repos.notification, repos.user)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.broadcast)
	s.billing = service.NewBillingService(repos.subscription, repos.user, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user, s.storage),
		journal:   controller.NewJournalController(s.journal),
		course:    controller.NewCourseController(s.course),
		feed:      controller.NewFeedController(s.feed, s.storage),
		broadcast: controller.NewBroadcastController(s.broadcast),
		analytics: controller.NewAnalyticsController(s.analytics),
		billing:   controller.NewBillingController(s.billing),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startScheduler drives the broadcast dispatcher: every tick, scheduled
// broadcasts whose time has arrived are sent.
func (a *App) startScheduler(s *services, cfg *config.Config) {
	a.scheduler = cron.New()
	_, err := a.scheduler.AddFunc(cfg.Broadcast.DispatchSpec, func() {
		if err := s.broadcast.DispatchDue(); err != nil {
			logger.Log.Error("broadcast dispatch run failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Log.Fatal("invalid broadcast dispatch spec",
			zap.String("spec", cfg.Broadcast.DispatchSpec), zap.Error(err))
	}
	a.scheduler.Start()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("chef-brigade", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startScheduler(services, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
