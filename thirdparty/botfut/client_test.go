package botfut_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botfut/botfut/cmd/config"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/thirdparty/botfut"
)

func newClient(url string) botfut.Client {
	return botfut.New(config.BotFutConfig{
		BaseURL: url,
		APIKey:  "secret",
		Timeout: time.Second,
	})
}

func TestClient_SendSubmission(t *testing.T) {
	t.Run("posts player with country code", func(t *testing.T) {
		var gotPath, gotKey string
		var gotBody map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("X-API-Key")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		payload := json.RawMessage(`{"name":"Rafa","phone":"11987654321"}`)
		err := newClient(srv.URL).SendSubmission(context.Background(), constant.FormPlayer, payload)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/players", gotPath)
		assert.Equal(t, "secret", gotKey)
		assert.Equal(t, "5511987654321", gotBody["phone"])
		assert.Equal(t, "Rafa", gotBody["name"])
	})

	t.Run("bot config path and landline phone", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		payload := json.RawMessage(`{"bot_phone":"1133334444","reminder_time":"09:00"}`)
		err := newClient(srv.URL).SendSubmission(context.Background(), constant.FormBotConfig, payload)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/bot-config", gotPath)
		assert.Equal(t, "551133334444", gotBody["bot_phone"])
	})

	t.Run("empty optional phone is left alone", func(t *testing.T) {
		var gotBody map[string]interface{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		payload := json.RawMessage(`{"description":"Bola","amount_cents":5000,"player_phone":""}`)
		err := newClient(srv.URL).SendSubmission(context.Background(), constant.FormTransaction, payload)
		require.NoError(t, err)
		assert.Equal(t, "", gotBody["player_phone"])
	})

	t.Run("server error is returned after a single request", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		err := newClient(srv.URL).SendSubmission(context.Background(), constant.FormGame, json.RawMessage(`{"title":"Pelada"}`))
		var se *botfut.StatusError
		require.True(t, errors.As(err, &se))
		assert.True(t, se.Retryable())
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("client error is not retried", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad"}`))
		}))
		defer srv.Close()

		err := newClient(srv.URL).SendSubmission(context.Background(), constant.FormGame, json.RawMessage(`{"title":"Pelada"}`))
		require.Error(t, err)
		var se *botfut.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusBadRequest, se.StatusCode)
		assert.False(t, se.Retryable())
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := newClient("http://127.0.0.1:1").SendSubmission(context.Background(), constant.FormKind("league"), json.RawMessage(`{}`))
		assert.Error(t, err)
	})

	t.Run("invalid payload", func(t *testing.T) {
		err := newClient("http://127.0.0.1:1").SendSubmission(context.Background(), constant.FormPlayer, json.RawMessage(`not json`))
		assert.Error(t, err)
	})
}
