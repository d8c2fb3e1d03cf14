package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
)

const bearerPrefix = "Bearer "

// bearerAuth returns the middleware enforcing shared-secret bearer
// authentication on protected routes.
//
// It inspects the incoming "Authorization" header and rejects the request
// with a 401 error envelope when:
//   - the header is absent;
//   - the header does not use the Bearer scheme;
//   - the token does not exactly equal the configured secret.
//
// The downstream handler never runs on a rejected request. Rejections are
// logged via the request-scoped logger; the caller only sees the fixed
// message.
func bearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			header := r.Header.Get("Authorization")
			if header == "" {
				log.Debug().Msg("missing Authorization header")
				writeErrorEnvelope(w, r, fault.Unauthorized("Authorization header is required"))
				return
			}

			if !strings.HasPrefix(header, bearerPrefix) {
				log.Debug().Msg("Authorization header has wrong scheme")
				writeErrorEnvelope(w, r, fault.Unauthorized(`Authorization header must start with "Bearer "`))
				return
			}

			token := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				log.Debug().Msg("bearer token mismatch")
				writeErrorEnvelope(w, r, fault.Unauthorized("Invalid authentication token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
