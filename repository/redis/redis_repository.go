package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/botfut/botfut/constant"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SaveDraft(ctx context.Context, key DraftKey, fields map[string]string, ttl time.Duration) error
	GetDraft(ctx context.Context, key DraftKey) (map[string]string, error)
	DeleteDraft(ctx context.Context, key DraftKey) error
}

// DraftKey identifies the in-progress copy of one form for one operator.
type DraftKey struct {
	WorkspaceID uint64
	UserID      uint64
	Kind        constant.FormKind
}

func (k DraftKey) String() string {
	return fmt.Sprintf("draft:%d:%d:%s", k.WorkspaceID, k.UserID, k.Kind)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	return r.client.Get(ctx, sessionKey(sessionID)).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

// SaveDraft stores the raw form fields, replacing any previous draft and resetting its TTL.
func (r *redis) SaveDraft(ctx context.Context, key DraftKey, fields map[string]string, ttl time.Duration) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key.String(), body, ttl).Err()
}

// GetDraft returns nil, nil when no draft is stored.
func (r *redis) GetDraft(ctx context.Context, key DraftKey) (map[string]string, error) {
	body, err := r.client.Get(ctx, key.String()).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	fields := make(map[string]string)
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", key, err)
	}
	return fields, nil
}

func (r *redis) DeleteDraft(ctx context.Context, key DraftKey) error {
	return r.client.Del(ctx, key.String()).Err()
}
