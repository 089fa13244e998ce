package context

import (
	"context"

	"github.com/botfut/botfut/constant"
)

// Session is the caller identity resolved by the auth middleware. It travels explicitly through
// the application layer instead of living in ambient state.
type Session struct {
	UserID      uint64
	WorkspaceID uint64
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, constant.SessionKey, s)
}

func GetSession(ctx context.Context) (Session, bool) {
	v := ctx.Value(constant.SessionKey)
	if v == nil {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	s, ok := GetSession(ctx)
	if !ok {
		return 0, false
	}
	return s.UserID, true
}
