package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/utils/errors"
)

// InternalMiddleware checks for the static API key used by the delivery consumer.
// An empty key closes the internal routes.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			want := "Bearer " + apiKey
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
