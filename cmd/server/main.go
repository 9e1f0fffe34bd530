package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orbit-hrms/backend/config"
	"orbit-hrms/backend/internal/api/handler"
	"orbit-hrms/backend/internal/api/router"
	"orbit-hrms/backend/internal/repository"
	"orbit-hrms/backend/internal/service"
	"orbit-hrms/backend/pkg/database"
	"orbit-hrms/backend/pkg/jwt"
	applogger "orbit-hrms/backend/pkg/logger"
	"orbit-hrms/backend/pkg/mailer"
	"orbit-hrms/backend/pkg/redis"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. initialise logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. connect to the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// 3.1 run schema migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain underlying sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. connect to Redis (optional: degrade rather than abort, session
	// revocation and login rate limiting are disabled without it)
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, session revocation disabled", zap.Error(err))
		rdb = nil
	}

	// 5. initialise the JWT manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. initialise the mailer (nil when SMTP is not configured)
	mail := mailer.New(&cfg.Mail, logger)

	// 7. dependency injection: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, mail, logger)
	h := handler.NewHandler(cfg, handler.FromService(svc))

	// 7.1 seed the first admin so an empty database is usable
	if err := svc.User.Bootstrap(context.Background(), &cfg.Bootstrap); err != nil {
		logger.Fatal("admin bootstrap failed", zap.Error(err))
	}

	// 8. build the router
	engine := router.Setup(cfg, h, jwtMgr, rdb, repo, logger)

	// 9. start the HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	// 10. wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
