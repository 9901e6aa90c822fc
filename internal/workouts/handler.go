package workouts

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	ListAssigned(ctx context.Context, memberID, date string) ([]AssignedWorkout, error)
	AssignWorkout(ctx context.Context, caller auth.Identity, memberID string, params AssignParams) (*AssignedWorkout, error)
	GetLog(ctx context.Context, memberID, date string) (*WorkoutLog, error)
	SaveLog(ctx context.Context, caller auth.Identity, memberID, date string, update LogUpdate) (*WorkoutLog, error)
}

type memberAccess interface {
	CanViewMember(ctx context.Context, caller auth.Identity, memberID string) error
	ManagedMemberGym(ctx context.Context, caller auth.Identity, memberID string) (string, error)
}

type Handler struct {
	service workoutsService
	access  memberAccess
}

func NewHandler(service workoutsService, access memberAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (handler *Handler) HandleListAssigned(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listAssigned")
	defer span.End()

	memberID, ok := handler.viewableMember(w, r, "id")
	if !ok {
		return
	}

	workouts, err := handler.service.ListAssigned(ctx, memberID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, "list assigned workouts", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success":  true,
		"workouts": workouts,
	}, http.StatusOK)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.assign")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	memberID := mux.Vars(r)["id"]
	if _, err := handler.access.ManagedMemberGym(ctx, *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return
	}

	var params AssignParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("assign workout, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid workout payload", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.AssignWorkout(ctx, *caller, memberID, params)
	if err != nil {
		writeError(w, "assign workout", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"message": "Exercise assigned successfully",
		"workout": workout,
	}, http.StatusCreated)
}

// HandleGetLog answers {"log": null} when nothing was logged for the date.
func (handler *Handler) HandleGetLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getLog")
	defer span.End()

	memberID, ok := handler.viewableMember(w, r, "memberId")
	if !ok {
		return
	}

	wl, err := handler.service.GetLog(ctx, memberID, r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, "get workout log", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"log": wl}, http.StatusOK)
}

func (handler *Handler) HandleSaveLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.saveLog")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var update LogUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("save workout log, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid workout log payload", http.StatusBadRequest)
		return
	}

	wl, err := handler.service.SaveLog(ctx, *caller, mux.Vars(r)["memberId"], r.URL.Query().Get("date"), update)
	if err != nil {
		writeError(w, "save workout log", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "Workout log saved successfully",
		"log":     wl,
	}, http.StatusOK)
}

func (handler *Handler) viewableMember(w http.ResponseWriter, r *http.Request, varName string) (string, bool) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}

	memberID := mux.Vars(r)[varName]
	if err := handler.access.CanViewMember(r.Context(), *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return "", false
	}

	return memberID, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrMemberNotFound):
		pkg.WriteJSONMessage(w, "Member not found", http.StatusNotFound)
	case errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrAssignmentInvalid),
		errors.Is(err, ErrNegativeLoad):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
