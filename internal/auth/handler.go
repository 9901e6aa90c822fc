package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type revoker interface {
	Revoke(ctx context.Context, identity *Identity, now time.Time) error
}

type Handler struct {
	revoker revoker
	now     func() time.Time
}

func NewHandler(revoker revoker) *Handler {
	return &Handler{
		revoker: revoker,
		now:     time.Now,
	}
}

// HandleLogout revokes the bearer token the request was authenticated with.
func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	identity, ok := FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := handler.revoker.Revoke(ctx, identity, handler.now()); err != nil {
		log.Errorf("logout for [%s] failed: %s", identity.UserID, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("logout for [%s] success", identity.UserID)
	pkg.WriteJSONMessage(w, "Logged out successfully", http.StatusOK)
}
