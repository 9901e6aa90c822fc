package exercises

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	ListExercises(ctx context.Context, gymID, muscleGroup string) ([]GymExercise, error)
	AddExercise(ctx context.Context, caller auth.Identity, gymID string, params NewExerciseParams) (*GymExercise, error)
	DeleteExercise(ctx context.Context, gymID, exerciseID string) error
}

type gymAccess interface {
	CallerGym(ctx context.Context, caller auth.Identity) (string, error)
	MembershipGym(ctx context.Context, caller auth.Identity) (string, error)
}

type Handler struct {
	service exercisesService
	access  gymAccess
}

func NewHandler(service exercisesService, access gymAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

// HandleList serves the library of the caller's gym to its owner and members alike.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gymID, err := handler.access.MembershipGym(ctx, *caller)
	if err != nil {
		writeError(w, "get membership gym", err)
		return
	}

	exercises, err := handler.service.ListExercises(ctx, gymID, r.URL.Query().Get("muscleGroup"))
	if err != nil {
		writeError(w, "list exercises", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"exercises": exercises}, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gymID, err := handler.access.CallerGym(ctx, *caller)
	if err != nil {
		writeError(w, "get caller gym", err)
		return
	}

	var params NewExerciseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("add exercise, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid exercise payload", http.StatusBadRequest)
		return
	}

	exercise, err := handler.service.AddExercise(ctx, *caller, gymID, params)
	if err != nil {
		writeError(w, "add exercise", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message":  "Exercise added successfully",
		"exercise": exercise,
	}, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gymID, err := handler.access.CallerGym(ctx, *caller)
	if err != nil {
		writeError(w, "get caller gym", err)
		return
	}

	if err := handler.service.DeleteExercise(ctx, gymID, mux.Vars(r)["id"]); err != nil {
		writeError(w, "delete exercise", err)
		return
	}

	pkg.WriteJSONMessage(w, "Exercise deleted successfully", http.StatusOK)
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONMessage(w, "Exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrNameRequired):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
