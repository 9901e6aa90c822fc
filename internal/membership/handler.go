package membership

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=membership_test

type plansService interface {
	ListPlans(ctx context.Context, gymID string) ([]Plan, error)
	CreatePlan(ctx context.Context, gymID string, params NewPlanParams) (*Plan, error)
	UpdatePlan(ctx context.Context, gymID, planID string, update PlanUpdate) (*Plan, error)
	DeletePlan(ctx context.Context, gymID, planID string) error
}

type gymAccess interface {
	CallerGym(ctx context.Context, caller auth.Identity) (string, error)
}

type Handler struct {
	service plansService
	access  gymAccess
}

func NewHandler(service plansService, access gymAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.membership.list")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	plans, err := handler.service.ListPlans(ctx, gymID)
	if err != nil {
		writeError(w, "list plans", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"plans":   plans,
	}, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.membership.create")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	var params NewPlanParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create plan, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid plan payload", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.CreatePlan(ctx, gymID, params)
	if err != nil {
		writeError(w, "create plan", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"plan":    plan,
	}, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.membership.update")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	var update PlanUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update plan, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid plan payload", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.UpdatePlan(ctx, gymID, mux.Vars(r)["id"], update)
	if err != nil {
		writeError(w, "update plan", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"message": "Plan updated successfully",
		"plan":    plan,
	}, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.membership.delete")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeletePlan(ctx, gymID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete plan", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"message": "Plan deleted successfully",
	}, http.StatusOK)
}

func (handler *Handler) callerGym(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	gymID, err := handler.access.CallerGym(r.Context(), *caller)
	if err != nil {
		writeError(w, "get caller gym", err)
		return "", false
	}

	return gymID, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrPlanNotFound):
		pkg.WriteJSONMessage(w, "Plan not found", http.StatusNotFound)
	case errors.Is(err, ErrMissingPlanFields),
		errors.Is(err, ErrInvalidPlanPrice),
		errors.Is(err, ErrInvalidPlanPayload),
		errors.Is(err, ErrNothingToUpdate):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
