package middleware

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const mcpSecretHeader = "X-MCP-Secret"

type tokenVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddlewareHandler struct {
	verifier       tokenVerifier
	revocations    revocationChecker
	metricsManager *metrics.Manager
	mcpSecret      string
	allowedPaths   map[string]bool
}

func NewAuthMiddlewareHandler(
	verifier tokenVerifier,
	revocations revocationChecker,
	metricsManager *metrics.Manager,
	mcpSecret string,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier:       verifier,
		revocations:    revocations,
		metricsManager: metricsManager,
		mcpSecret:      mcpSecret,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,
			"/myip":    true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			// MCP clients authenticate with a shared secret, not a user token
			if strings.HasPrefix(r.URL.Path, "/mcp") {
				given := r.Header.Get(mcpSecretHeader)
				if h.mcpSecret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(h.mcpSecret)) != 1 {
					reqIp, _ := pkg.ReadUserIP(r)
					log.Warnf("[auth middleware] rejected mcp request from %s", reqIp)
					http.Error(w, "no can do", http.StatusUnauthorized)
					span.SetStatus(codes.Error, "mcp-secret-mismatch")
					return
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token, err := auth.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			identity, err := h.verifier.Verify(token)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] %s => %s", err, r.URL.Path)
				pkg.WriteJSONMessage(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			revoked, err := h.revocations.IsRevoked(ctx, identity.TokenID)
			if err != nil {
				log.Errorf("[failed revocation check] => %s: %s", r.URL.Path, err)
				pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "check-revoked-err")
				span.RecordError(err)
				return
			}
			if revoked {
				if h.metricsManager != nil {
					h.metricsManager.CounterRevokedTokenAttempts.Inc()
				}
				pkg.WriteJSONMessage(w, "Unauthorized: Token revoked", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "token-revoked")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), identity)))
		})
	}
}
