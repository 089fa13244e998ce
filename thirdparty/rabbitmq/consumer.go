package rabbitmq

import (
	"context"
	"errors"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/utils/logger"
)

// MessageHandler processes one delivery body.
type MessageHandler interface {
	Handle(ctx context.Context, body []byte) error
}

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler MessageHandler
}

func NewConsumer(cfg config.RabbitMQConfig, handler MessageHandler) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		SubmissionQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[Consumer] delivery channel closed")
					return
				}
				settle(ctx, c.handler, msg.Body, msg)
			}
		}
	}()

	return nil
}

// acknowledger is the subset of amqp091.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func settle(ctx context.Context, handler MessageHandler, body []byte, ack acknowledger) {
	err := handler.Handle(ctx, body)
	switch {
	case err == nil, errors.Is(err, ErrMalformedMessage):
		if ackErr := ack.Ack(false); ackErr != nil {
			logger.Error("[Consumer] err Ack", zap.Error(ackErr))
		}
	default:
		logger.Error("[Consumer] err handle, requeue", zap.Error(err))
		if nackErr := ack.Nack(false, true); nackErr != nil {
			logger.Error("[Consumer] err Nack", zap.Error(nackErr))
		}
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
