package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/thirdparty/botfut"
	"github.com/botfut/botfut/thirdparty/gateway"
	"github.com/botfut/botfut/utils/logger"
	"github.com/botfut/botfut/utils/retry"
)

// ErrMalformedMessage marks a body that can never be processed.
var ErrMalformedMessage = errors.New("malformed submission message")

// SubmissionHandler forwards one submission to Bot Fut and reports the outcome back to the API.
type SubmissionHandler struct {
	botfut  botfut.Client
	gateway gateway.Client
	retryer retry.Retryer
}

func NewSubmissionHandler(botfutClient botfut.Client, gatewayClient gateway.Client, retryer retry.Retryer) *SubmissionHandler {
	return &SubmissionHandler{
		botfut:  botfutClient,
		gateway: gatewayClient,
		retryer: retryer,
	}
}

// Handle returns ErrMalformedMessage for bodies that should be dropped, and an error when the
// outcome could not be recorded so the message is redelivered. A submission that is unknown or
// no longer pending is never sent again.
func (h *SubmissionHandler) Handle(ctx context.Context, body []byte) error {
	var msg model.SubmissionMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.SubmissionID == 0 {
		logger.Error("[SubmissionHandler] err unmarshal message", zap.ByteString("body", body))
		return ErrMalformedMessage
	}

	logFields := []zap.Field{zap.Uint64("submission_id", msg.SubmissionID), zap.String("kind", string(msg.Kind))}

	status, err := h.gateway.SubmissionStatus(ctx, msg.SubmissionID)
	if err != nil {
		if gateway.IsTerminal(err) {
			logger.Warn("[SubmissionHandler] submission unknown, dropping message", append(logFields, zap.Error(err))...)
			return nil
		}
		logger.Error("[SubmissionHandler] err gateway.SubmissionStatus", append(logFields, zap.Error(err))...)
		return fmt.Errorf("read submission %d status: %w", msg.SubmissionID, err)
	}
	if status != constant.SubmissionStatusPending {
		logger.Info("[SubmissionHandler] submission already settled, skipping",
			append(logFields, zap.String("status", status.String()))...)
		return nil
	}

	var failed bool
	err = h.retryer.Retry(ctx,
		func() error {
			err := h.botfut.SendSubmission(ctx, msg.Kind, msg.Payload)
			if err == nil {
				return nil
			}
			var se *botfut.StatusError
			if errors.As(err, &se) && !se.Retryable() {
				return h.retryer.Stop(err)
			}
			return err
		},
		func(err error) error {
			failed = true
			logger.Warn("[SubmissionHandler] delivery failed", append(logFields, zap.Error(err))...)
			return h.gateway.MarkFailed(ctx, msg.SubmissionID, err.Error())
		},
	)
	if err != nil {
		return h.callbackError(err, "MarkFailed", msg.SubmissionID, logFields)
	}
	if failed {
		return nil
	}

	if err := h.gateway.MarkDelivered(ctx, msg.SubmissionID); err != nil {
		return h.callbackError(err, "MarkDelivered", msg.SubmissionID, logFields)
	}

	logger.Info("[SubmissionHandler] submission delivered", logFields...)
	return nil
}

// callbackError acks when the API says the submission was settled meanwhile and requeues
// otherwise.
func (h *SubmissionHandler) callbackError(err error, call string, submissionID uint64, logFields []zap.Field) error {
	if gateway.IsTerminal(err) {
		logger.Warn("[SubmissionHandler] gateway."+call+" rejected, submission already settled", append(logFields, zap.Error(err))...)
		return nil
	}
	logger.Error("[SubmissionHandler] err gateway."+call, append(logFields, zap.Error(err))...)
	return fmt.Errorf("%s submission %d: %w", call, submissionID, err)
}
