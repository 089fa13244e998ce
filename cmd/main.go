package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	formapp "github.com/botfut/botfut/application/form"
	maskapp "github.com/botfut/botfut/application/mask"
	userapp "github.com/botfut/botfut/application/user"
	"github.com/botfut/botfut/cmd/config"
	redisclient "github.com/botfut/botfut/cmd/redis"
	_ "github.com/botfut/botfut/docs"
	redisRepo "github.com/botfut/botfut/repository/redis"
	submissionRepo "github.com/botfut/botfut/repository/submission"
	txRepo "github.com/botfut/botfut/repository/tx"
	userRepo "github.com/botfut/botfut/repository/user"
	"github.com/botfut/botfut/thirdparty/rabbitmq"
	"github.com/botfut/botfut/transport"
	"github.com/botfut/botfut/utils/logger"
	validatorx "github.com/botfut/botfut/utils/validator"
)

// @title BOT FUT FORM GATEWAY API
// @version 1.0
// @description Input masking, form normalization and submission delivery for Bot Fut
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisClient.Close()
	}()

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	SubmissionRepo := submissionRepo.NewSubmissionRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	MaskApp := maskapp.NewMaskApp()
	FormApp := formapp.NewFormApp(cfg, TxRepo, SubmissionRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(UserApp, MaskApp, FormApp, transport.Options{
		InternalAPIKey: cfg.Internal.APIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
