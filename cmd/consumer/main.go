package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/thirdparty/botfut"
	"github.com/botfut/botfut/thirdparty/gateway"
	"github.com/botfut/botfut/thirdparty/rabbitmq"
	"github.com/botfut/botfut/utils/logger"
	"github.com/botfut/botfut/utils/retry"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	handler := rabbitmq.NewSubmissionHandler(
		botfut.New(cfg.BotFut),
		gateway.New(cfg.Internal),
		retry.NewExponentialBackOff(retry.Config{
			MaxRetries:      cfg.BotFut.MaxRetries,
			InitialInterval: cfg.BotFut.RetryInterval,
		}),
	)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, handler)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Submission consumer running", zap.String("queue", rabbitmq.SubmissionQueue))

	<-ctx.Done()
	logger.Info("Stopping submission consumer")
}
