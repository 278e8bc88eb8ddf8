package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymnexa/backend"
	"gymnexa/config"
	"gymnexa/database"
	bookingRepo "gymnexa/database/repository/booking"
	profileRepo "gymnexa/database/repository/profile"
	"gymnexa/handlers"
	"gymnexa/metrics"
	"gymnexa/routes"
	"gymnexa/services/auth"
	"gymnexa/services/booking"
	"gymnexa/services/identity"
	"gymnexa/services/profile"
	"gymnexa/services/session"
	"gymnexa/services/storage"
	"gymnexa/services/wizard"
	"gymnexa/utils"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// backends are the managed services selected by configuration.
type backends struct {
	identity backend.IdentityProvider
	profiles backend.ProfileStore
	bookings backend.BookingStore
	objects  backend.ObjectStore
	checks   map[string]utils.HealthCheck
	closers  []func()
}

func setupBackends(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) *backends {
	b := &backends{
		identity: backend.UnconfiguredIdentity{},
		profiles: backend.UnconfiguredProfiles{},
		bookings: backend.UnconfiguredBookings{},
		objects:  backend.UnconfiguredObjects{},
		checks:   map[string]utils.HealthCheck{"redis": utils.PingRedis},
	}

	var app *firebase.App
	if cfg.FirebaseConfigured() {
		var err error
		if app, err = utils.FirebaseApp(ctx, cfg); err != nil {
			logger.Errorf("main: firebase disabled: %v", err)
		}
	} else {
		logger.Warn("main: firebase not configured, identity runs unconfigured")
	}

	if app != nil {
		tokens, err := app.Auth(ctx)
		if err != nil {
			logger.Errorf("main: firebase auth unavailable: %v", err)
		} else {
			var opts []option.ClientOption
			if cfg.FirebaseCredentialsFile != "" {
				opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
			}
			password, err := identity.NewToolkitClient(ctx, cfg.FirebaseAPIKey, opts...)
			if err != nil {
				logger.Errorf("main: identity toolkit unavailable: %v", err)
			} else {
				b.identity = identity.NewFirebaseIdentityProvider(password, tokens)
			}
		}
	}

	switch cfg.DocumentStore {
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Errorf("main: mongo disabled: %v", err)
			break
		}
		db := database.Database()
		b.profiles = profileRepo.NewMongoProfileRepo(db)
		b.bookings = bookingRepo.NewMongoBookingRepo(db)
		b.checks["mongo"] = database.Ping
		b.closers = append(b.closers, func() { _ = database.Disconnect(context.Background()) })
	case "firestore":
		if app == nil {
			logger.Error("main: firestore requires a configured firebase project")
			break
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			logger.Errorf("main: firestore disabled: %v", err)
			break
		}
		b.profiles = profileRepo.NewFirestoreProfileRepo(client)
		b.bookings = bookingRepo.NewFirestoreBookingRepo(client)
		b.checks["firestore"] = firestorePing(client)
		b.closers = append(b.closers, func() { _ = client.Close() })
	case "":
	default:
		logger.Errorf("main: unknown DOCUMENT_STORE %q", cfg.DocumentStore)
	}

	if b.profiles.Configured() && utils.GetCacheClient() != nil {
		b.profiles = profileRepo.NewCachedProfileRepo(b.profiles, utils.GetCacheClient(), cfg.ProfileCacheTTL)
	}

	switch cfg.ObjectStore {
	case "firebase":
		if app == nil {
			logger.Error("main: firebase storage requires a configured firebase project")
			break
		}
		client, err := app.Storage(ctx)
		if err != nil {
			logger.Errorf("main: firebase storage disabled: %v", err)
			break
		}
		bucket, err := client.DefaultBucket()
		if err != nil {
			logger.Errorf("main: firebase storage bucket: %v", err)
			break
		}
		b.objects = storage.NewFirebaseStorageService(bucket, cfg.FirebaseStorageBucket)
	case "cloudinary":
		cld, err := utils.Cloudinary(cfg)
		if err != nil {
			logger.Errorf("main: cloudinary disabled: %v", err)
			break
		}
		b.objects = storage.NewCloudinaryStorageService(cld)
	case "":
	default:
		logger.Errorf("main: unknown OBJECT_STORE %q", cfg.ObjectStore)
	}

	logger.Infow("main: backends ready",
		"identity", b.identity.Configured(),
		"profiles", b.profiles.Configured(),
		"bookings", b.bookings.Configured(),
		"objects", b.objects.Configured(),
	)
	return b
}

// firestorePing probes Firestore with a bounded read of the profiles collection.
func firestorePing(client *firestore.Client) utils.HealthCheck {
	return func(ctx context.Context) error {
		_, err := client.Collection("users").Limit(1).Documents(ctx).GetAll()
		return err
	}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger().Sugar()
	defer func() { _ = utils.GetLogger().Sync() }()

	if cfg.JWTSecret != "" {
		utils.SetTokenSecret(cfg.JWTSecret)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := utils.InitRedis(); err != nil {
		logger.Fatalf("main: %v", err)
	}
	defer utils.CloseRedis()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	b := setupBackends(ctx, cfg, logger)
	for _, closeFn := range b.closers {
		defer closeFn()
	}

	sessions := session.NewManager(
		session.NewRedisStore(utils.GetSessionClient(), cfg.SessionTTL),
		b.identity, b.profiles, cfg.Location(), cfg.SessionTTL,
	)
	defer sessions.Close()

	health := utils.NewHealthMonitor(b.checks)
	health.Start(ctx, 30*time.Second)

	hb := &handlers.HandlerBundle{
		Sessions:  sessions,
		Auth:      auth.NewService(b.identity, sessions),
		Submitter: &wizard.Submitter{Identity: b.identity, Profiles: b.profiles, Objects: b.objects},
		Profiles:  profile.NewService(b.profiles, b.objects),
		Bookings:  booking.NewService(b.bookings),
		Health:    health,
		Metrics:   metrics.NewHTTPMetrics(nil),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = utils.UploadLimit
	routes.RegisterRoutes(router, hb)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("main: server forced to shutdown: %v", err)
	}
	logger.Info("main: server stopped gracefully")
}
