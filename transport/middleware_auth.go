package transport

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/botfut/botfut/application/user"
	"github.com/botfut/botfut/constant"
	appctx "github.com/botfut/botfut/utils/context"
	"github.com/botfut/botfut/utils/errors"
)

// AuthMiddleware validates the bearer token and stores the caller's Session in the request
// context. The workspace comes from the X-Workspace-ID header and must have been granted to the
// operator; when it is absent the session has no workspace and workspace-scoped operations
// refuse it.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			session := appctx.Session{UserID: userID}
			if header := strings.TrimSpace(r.Header.Get(constant.WorkspaceHeader)); header != "" {
				workspaceID, err := strconv.ParseUint(header, 10, 64)
				if err != nil || workspaceID == 0 {
					writeError(w, errors.SetCustomError(constant.ErrWorkspaceRequired))
					return
				}
				if err := userApp.AuthorizeWorkspace(r.Context(), userID, workspaceID); err != nil {
					writeError(w, err)
					return
				}
				session.WorkspaceID = workspaceID
			}

			next.ServeHTTP(w, r.WithContext(appctx.WithSession(r.Context(), session)))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if strings.HasPrefix(path, "/v1/mask/") {
		return true
	}
	if path == "/login" || path == "/register" {
		return true
	}

	return false
}
