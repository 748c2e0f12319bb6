package middleware

import (
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/ushnuel/next-dashboard/internal/config"
	"github.com/ushnuel/next-dashboard/pkg/logger"
)

// WithAuth rejects requests without a valid bearer token, except for the
// configured open URLs. The token subject is forwarded in the User-ID header.
func WithAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, open := range cfg.AuthDisabledURLs {
				if strings.HasSuffix(r.RequestURI, open) {
					next.ServeHTTP(w, r)
					return
				}
			}

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Log.Warn("unauthorized request", logger.String("url", r.RequestURI))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			var claims jwt.StandardClaims
			_, err := jwt.ParseWithClaims(
				strings.TrimPrefix(authHeader, "Bearer "),
				&claims,
				func(token *jwt.Token) (interface{}, error) {
					return []byte(cfg.PrivateKey), nil
				},
			)
			if err != nil {
				logger.Log.Warn("unauthorized request", logger.String("url", r.RequestURI), logger.Error(err))
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			r.Header.Set("User-ID", claims.Subject)

			next.ServeHTTP(w, r)
		})
	}
}
