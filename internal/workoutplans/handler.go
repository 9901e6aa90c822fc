package workoutplans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workoutplans_test

type planService interface {
	GetWeeklySchedule(ctx context.Context, memberID string) (WeeklySchedule, error)
	GetPlan(ctx context.Context, gymID, planID string) (*WorkoutPlan, error)
	UpsertDayPlan(ctx context.Context, caller auth.Identity, gymID, memberID string, update DayPlanUpdate) (*WorkoutPlan, bool, error)
	AddExerciseToPlan(ctx context.Context, gymID, planID string, exercise Exercise) (*WorkoutPlan, error)
	RemoveExerciseFromPlan(ctx context.Context, gymID, planID string, order int) (*WorkoutPlan, error)
}

type gymAccess interface {
	CallerGym(ctx context.Context, caller auth.Identity) (string, error)
	CanViewMember(ctx context.Context, caller auth.Identity, memberID string) error
	ManagedMemberGym(ctx context.Context, caller auth.Identity, memberID string) (string, error)
}

type Handler struct {
	service planService
	access  gymAccess
}

func NewHandler(service planService, access gymAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (handler *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutplans.schedule")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	memberID := mux.Vars(r)["memberId"]
	if err := handler.access.CanViewMember(ctx, *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return
	}

	schedule, err := handler.service.GetWeeklySchedule(ctx, memberID)
	if err != nil {
		writeError(w, "get weekly schedule", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"plans": schedule}, http.StatusOK)
}

func (handler *Handler) HandleUpsertDayPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutplans.upsert")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	memberID := mux.Vars(r)["memberId"]
	gymID, err := handler.access.ManagedMemberGym(ctx, *caller, memberID)
	if err != nil {
		writeError(w, "check member access", err)
		return
	}

	var update DayPlanUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("upsert day plan, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid workout plan payload", http.StatusBadRequest)
		return
	}

	plan, created, err := handler.service.UpsertDayPlan(ctx, *caller, gymID, memberID, update)
	if err != nil {
		writeError(w, "upsert day plan", err)
		return
	}

	message := "Workout plan updated successfully"
	if created {
		message = "Workout plan created successfully"
	}
	pkg.WriteJSON(w, map[string]any{
		"message": message,
		"plan":    plan,
	}, http.StatusOK)
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutplans.get")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	plan, err := handler.service.GetPlan(ctx, gymID, mux.Vars(r)["planId"])
	if err != nil {
		writeError(w, "get plan", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"plan": plan}, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutplans.addExercise")
	defer span.End()

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("add exercise, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid exercise payload", http.StatusBadRequest)
		return
	}

	plan, err := handler.service.AddExerciseToPlan(ctx, gymID, mux.Vars(r)["planId"], exercise)
	if err != nil {
		writeError(w, "add exercise", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "Exercise added to plan successfully",
		"plan":    plan,
	}, http.StatusOK)
}

func (handler *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutplans.removeExercise")
	defer span.End()

	vars := mux.Vars(r)
	order, err := strconv.Atoi(vars["order"])
	if err != nil {
		pkg.WriteJSONMessage(w, "Exercise order must be a number", http.StatusBadRequest)
		return
	}

	gymID, ok := handler.callerGym(w, r)
	if !ok {
		return
	}

	plan, err := handler.service.RemoveExerciseFromPlan(ctx, gymID, vars["planId"], order)
	if err != nil {
		writeError(w, "remove exercise", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "Exercise removed from plan successfully",
		"plan":    plan,
	}, http.StatusOK)
}

// callerGym resolves the gym owned by the caller, writing the error response if there is none.
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
		pkg.WriteJSONMessage(w, "Workout plan not found", http.StatusNotFound)
	case errors.Is(err, ErrMemberNotFound):
		pkg.WriteJSONMessage(w, "Member not found", http.StatusNotFound)
	case errors.Is(err, ErrConcurrentModification):
		pkg.WriteJSONMessage(w, "Workout plan was changed by someone else, reload and try again", http.StatusConflict)
	case errors.Is(err, ErrInvalidDayOfWeek), errors.Is(err, ErrInvalidExercise):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
