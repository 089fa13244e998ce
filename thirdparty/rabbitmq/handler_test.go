package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/botfut/botfut/constant"
	botfutmocks "github.com/botfut/botfut/mocks/thirdparty/botfut"
	gatewaymocks "github.com/botfut/botfut/mocks/thirdparty/gateway"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/thirdparty/botfut"
	"github.com/botfut/botfut/thirdparty/gateway"
	"github.com/botfut/botfut/thirdparty/rabbitmq"
	"github.com/botfut/botfut/utils/retry"
)

func messageBody(t *testing.T, id uint64) []byte {
	t.Helper()
	body, err := json.Marshal(model.SubmissionMessage{
		SubmissionID: id,
		WorkspaceID:  3,
		Kind:         constant.FormPlayer,
		Payload:      json.RawMessage(`{"name":"Rafa","phone":"11987654321"}`),
		CreatedAt:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestSubmissionHandler_Handle(t *testing.T) {
	type fields struct {
		botfut  *botfutmocks.Client
		gateway *gatewaymocks.Client
	}
	tests := []struct {
		name     string
		body     func(t *testing.T) []byte
		mockCall func(f fields)
		wantErr  error
		anyErr   bool
	}{
		{
			name: "success: delivered and reported",
			body: func(t *testing.T) []byte { return messageBody(t, 10) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(10)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).Return(nil).Once()
				f.gateway.On("MarkDelivered", mock.Anything, uint64(10)).Return(nil).Once()
			},
		},
		{
			name: "success: transient failure then delivered",
			body: func(t *testing.T) []byte { return messageBody(t, 11) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(11)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).
					Return(&botfut.StatusError{StatusCode: http.StatusServiceUnavailable}).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).Return(nil).Once()
				f.gateway.On("MarkDelivered", mock.Anything, uint64(11)).Return(nil).Once()
			},
		},
		{
			name: "rejected by bot fut: marked failed without retry",
			body: func(t *testing.T) []byte { return messageBody(t, 12) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(12)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).
					Return(&botfut.StatusError{StatusCode: http.StatusBadRequest, Body: "bad phone"}).Once()
				f.gateway.On("MarkFailed", mock.Anything, uint64(12), mock.AnythingOfType("string")).Return(nil).Once()
			},
		},
		{
			name: "retries exhausted: marked failed",
			body: func(t *testing.T) []byte { return messageBody(t, 13) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(13)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).
					Return(errors.New("connection refused")).Times(3)
				f.gateway.On("MarkFailed", mock.Anything, uint64(13), "connection refused").Return(nil).Once()
			},
		},
		{
			name: "error: mark delivered fails",
			body: func(t *testing.T) []byte { return messageBody(t, 14) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(14)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).Return(nil).Once()
				f.gateway.On("MarkDelivered", mock.Anything, uint64(14)).Return(errors.New("api down")).Once()
			},
			anyErr: true,
		},
		{
			name: "error: mark failed fails",
			body: func(t *testing.T) []byte { return messageBody(t, 15) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(15)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).
					Return(&botfut.StatusError{StatusCode: http.StatusUnprocessableEntity}).Once()
				f.gateway.On("MarkFailed", mock.Anything, uint64(15), mock.Anything).Return(errors.New("api down")).Once()
			},
			anyErr: true,
		},
		{
			name: "redelivery of a delivered submission: skipped",
			body: func(t *testing.T) []byte { return messageBody(t, 16) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(16)).Return(constant.SubmissionStatusDelivered, nil).Once()
			},
		},
		{
			name: "unknown submission: dropped",
			body: func(t *testing.T) []byte { return messageBody(t, 17) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(17)).
					Return(constant.SubmissionStatus(0), &gateway.StatusError{StatusCode: http.StatusNotFound}).Once()
			},
		},
		{
			name: "error: status lookup unavailable",
			body: func(t *testing.T) []byte { return messageBody(t, 18) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(18)).
					Return(constant.SubmissionStatus(0), &gateway.StatusError{StatusCode: http.StatusServiceUnavailable}).Once()
			},
			anyErr: true,
		},
		{
			name: "settled meanwhile: conflict on mark delivered is acked",
			body: func(t *testing.T) []byte { return messageBody(t, 19) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(19)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).Return(nil).Once()
				f.gateway.On("MarkDelivered", mock.Anything, uint64(19)).
					Return(&gateway.StatusError{StatusCode: http.StatusConflict, Body: "submission is not pending"}).Once()
			},
		},
		{
			name: "settled meanwhile: conflict on mark failed is acked",
			body: func(t *testing.T) []byte { return messageBody(t, 20) },
			mockCall: func(f fields) {
				f.gateway.On("SubmissionStatus", mock.Anything, uint64(20)).Return(constant.SubmissionStatusPending, nil).Once()
				f.botfut.On("SendSubmission", mock.Anything, constant.FormPlayer, mock.Anything).
					Return(&botfut.StatusError{StatusCode: http.StatusBadRequest}).Once()
				f.gateway.On("MarkFailed", mock.Anything, uint64(20), mock.Anything).
					Return(&gateway.StatusError{StatusCode: http.StatusConflict}).Once()
			},
		},
		{
			name:    "malformed body",
			body:    func(t *testing.T) []byte { return []byte("{not json") },
			wantErr: rabbitmq.ErrMalformedMessage,
		},
		{
			name:    "missing submission id",
			body:    func(t *testing.T) []byte { return []byte(`{"kind":"player"}`) },
			wantErr: rabbitmq.ErrMalformedMessage,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				botfut:  botfutmocks.NewClient(t),
				gateway: gatewaymocks.NewClient(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			retryer := retry.NewExponentialBackOff(retry.Config{MaxRetries: 2, InitialInterval: time.Millisecond})
			h := rabbitmq.NewSubmissionHandler(f.botfut, f.gateway, retryer)

			err := h.Handle(context.Background(), tt.body(t))
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, rabbitmq.ErrMalformedMessage)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
