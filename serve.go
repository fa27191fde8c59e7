package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/database/repository/memory"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var inMemory bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if inMemory {
				cfg.Storage = config.StorageMemory
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "keep all data in process memory instead of MongoDB")
	return cmd
}

func runServer(cfg *config.Config) error {
	logger, err := utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := utils.NewHealthMonitor(60*time.Second, logger)

	// Repositories
	var repos repository.Repositories
	switch cfg.Storage {
	case config.StorageMemory:
		repos = memory.NewStore().Repositories()
		monitor.Register("storage", func(context.Context) error { return nil })
		logger.Warn("using in-memory storage; data is lost on exit")
	default:
		client, err := database.Connect(ctx, cfg.MongoURI())
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("failed to disconnect from MongoDB", zap.Error(err))
			}
		}()
		logger.Info("database connected", zap.String("db", cfg.DBName))
		repos = repository.NewMongoRepositories(client.Database(cfg.DBName))
		monitor.Register("mongo", func(ctx context.Context) error { return client.Ping(ctx, nil) })
	}

	var roleCache user.RoleCache
	if cfg.RedisEnabled() {
		redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("role cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			roleCache = utils.NewRedisRoleCache(redisClient, utils.RoleCacheTTL)
			monitor.Register("redis", func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
		}
	}

	// Services
	tokens := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.TokenTTL)
	userService := &user.DefaultUserService{
		Repo:      repos.Users,
		Tokens:    tokens,
		Cache:     roleCache,
		StripRole: cfg.UserUpsertStripRole,
		Logger:    logger,
	}
	bookingService := &booking.DefaultBookingService{
		Services: repos.Services,
		Bookings: repos.Bookings,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: repos.Doctors}

	if cfg.Storage == config.StorageMemory {
		if _, err := bookingService.SeedServices(ctx, booking.DefaultCatalog()); err != nil {
			return err
		}
	}

	monitor.Start(ctx)

	bookingHandler := handlers.NewBookingHandler(bookingService, cfg.ServiceListProjection == config.ProjectionFull)
	userHandler := handlers.NewUserHandler(userService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	healthHandler := handlers.NewHealthHandler(monitor)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens:              tokens,
		Admins:              userService,
		AdminPromotionGuard: cfg.AdminPromotionGuard,

		RootHandler:   healthHandler.RootHandler,
		HealthHandler: healthHandler.HealthHandler,

		GetServices:        bookingHandler.GetServices,
		GetAvailable:       bookingHandler.GetAvailable,
		GetPatientBookings: bookingHandler.GetPatientBookings,
		CreateBooking:      bookingHandler.CreateBooking,

		GetAllUsersHandler: userHandler.GetAllUsersHandler,
		CheckAdminHandler:  userHandler.CheckAdminHandler,
		MakeAdminHandler:   userHandler.MakeAdminHandler,
		UpsertUserHandler:  userHandler.UpsertUserHandler,

		AddDoctorHandler:    doctorHandler.AddDoctorHandler,
		GetDoctorsHandler:   doctorHandler.GetDoctorsHandler,
		DeleteDoctorHandler: doctorHandler.DeleteDoctorHandler,
	}
	if !cfg.AdminPromotionGuard {
		logger.Warn("PUT /user/admin/:email is open to any authenticated caller")
	}
	if !cfg.UserUpsertStripRole {
		logger.Info("PUT /user/:email stores the role field sent by the client")
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Sugar().Infof("Doctors app listening on port %s", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
