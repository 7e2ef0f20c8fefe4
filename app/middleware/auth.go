package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/nathmaker/storefront/app/api"
)

// BasicAuth guards every path the route policy does not mark public.
// Credentials are checked against the single configured admin account.
func BasicAuth(policy *RoutePolicy, username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if policy.IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			user, pass, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="storefront"`)
				api.WriteError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
			passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
			if !userMatch || !passMatch {
				api.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
