package middleware

import (
	"net"
	"net/http"
	"regexp"
	"strings"

	"github.com/collectionshq/collections-in-go/pkg/config"
	"github.com/collectionshq/collections-in-go/pkg/identity"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

var bearerRegex = regexp.MustCompile(`^Bearer (\S+)$`)

// BearerAuthenticator is middleware that validates bearer tokens
type BearerAuthenticator struct {
	Verifier *token.Verifier
}

// NewBearerAuthenticator creates a new bearer token authenticator middleware
func NewBearerAuthenticator(verifier *token.Verifier) *BearerAuthenticator {
	return &BearerAuthenticator{Verifier: verifier}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the authenticated principal in the request context
func (b *BearerAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := bearerRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		principal, err := b.Verifier.Verify(tokenMatches[1])
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid or expired token"))
			return
		}

		principal.WithRemoteIP(clientIP(r))

		ctx := identity.Set(r.Context(), principal)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the originating client IP. X-Forwarded-For is honored
// only when the direct peer is a trusted proxy.
func clientIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if config.Get().IsTrustedProxy(host) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first := strings.TrimSpace(strings.Split(xff, ",")[0])
			if ip := net.ParseIP(first); ip != nil {
				return ip
			}
		}
	}

	return net.ParseIP(host)
}
