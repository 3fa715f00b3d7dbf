package auth

import (
	"net/http"
	"strings"

	apperrors "aircnc/pkg/errors"
	"aircnc/pkg/httpx"
	"aircnc/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// Guard wraps a single route with bearer-token verification. The route
// table mixes protected and open endpoints, so auth is applied per route
// rather than router-wide.
type Guard func(httprouter.Handle) httprouter.Handle

func Required(tokens *TokenService, log *logger.Logger) Guard {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.WriteError(w, apperrors.Unauthorized("Missing authorization header"))
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httpx.WriteError(w, apperrors.Unauthorized("Invalid authorization header"))
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				log.Warn("Token verification failed",
					"path", r.URL.Path,
					"error", err,
				)
				httpx.WriteError(w, apperrors.Unauthorized("Invalid or expired token"))
				return
			}

			next(w, r.WithContext(WithClaims(r.Context(), claims)), ps)
		}
	}
}
