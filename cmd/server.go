package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goversion "github.com/caarlos0/go-version"
	"github.com/sanyco86/sample-app/internal/config"
	"github.com/sanyco86/sample-app/internal/core"
	"github.com/sanyco86/sample-app/internal/db"
	"github.com/sanyco86/sample-app/internal/events"
	"github.com/sanyco86/sample-app/internal/http/handler"
	"github.com/sanyco86/sample-app/internal/http/handler/middleware"
	"github.com/sanyco86/sample-app/internal/http/payload"
	"github.com/sanyco86/sample-app/internal/http/server"
	"github.com/sanyco86/sample-app/internal/http/view"
	"github.com/sanyco86/sample-app/internal/repository"
	"github.com/sanyco86/sample-app/pkg/jwt"
	"github.com/sanyco86/sample-app/pkg/log"
	"go.uber.org/zap"
)

type activityPublisher interface {
	core.EventPublisher
	Close() error
}

func Start(info goversion.Info) error {
	config, err := config.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("sample-app", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	logger.Infow("starting sample app",
		"version", info.GitVersion,
		"commit", info.GitCommit,
		"built_at", info.BuildDate)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn)

	var seed []repository.User
	if config.Admin.Enabled() {
		admin, err := core.NewAdmin(core.SignupMessage{
			Name:     config.Admin.Name,
			Email:    config.Admin.Email,
			Password: config.Admin.Password,
		})
		if err != nil {
			logger.Errorw("failed to prepare admin user", "error", err)
			return err
		}
		seed = append(seed, admin)
	}

	err = repo.MigrateAndSeed(context.Background(), seed)
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// activity events
	publisher := newPublisher(logger, config)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorw("failed to close event publisher", "error", err)
		}
	}()

	// user service
	userService := core.NewUserService(
		logger,
		repo,
		jwtService,
		publisher,
		config.SessionTTL)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Errorw("failed to parse templates", "error", err)
		return err
	}

	// handler
	pageHlr := handler.NewPageHandler(
		logger,
		payload.DecodeValidator{},
		userService,
		renderer,
		config.SessionTTL)

	// register routes
	mux := http.NewServeMux()
	pageHlr.Register(mux)

	// middleware
	hdlr := middleware.NewSessionMiddleware(logger, userService).Session(mux)
	hdlr = middleware.NewMethodOverrideMiddleware().MethodOverride(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func newPublisher(logger *zap.SugaredLogger, cfg config.App) activityPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Infow("no kafka brokers configured, activity events are discarded")
		return events.NopPublisher{}
	}

	return events.NewKafkaPublisher(events.KafkaConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaTopic,
		WriteTimeout: cfg.KafkaWriteTimeout,
	})
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
