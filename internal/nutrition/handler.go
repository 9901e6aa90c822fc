package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionService interface {
	GetNutritionSummary(ctx context.Context, memberID string, date *time.Time, rng string) (*Summary, error)
	LogMeal(ctx context.Context, ownerID string, params NewMealParams) (*Meal, error)
}

type memberAccess interface {
	CanViewMember(ctx context.Context, caller auth.Identity, memberID string) error
}

type Handler struct {
	service nutritionService
	access  memberAccess
}

func NewHandler(service nutritionService, access memberAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (handler *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.summary")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	memberID := mux.Vars(r)["id"]
	if memberID == "" {
		pkg.WriteJSONMessage(w, "Member id required", http.StatusBadRequest)
		return
	}

	date, err := pkg.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.access.CanViewMember(ctx, *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return
	}

	summary, err := handler.service.GetNutritionSummary(ctx, memberID, date, r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, "get nutrition summary", err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

type logMealRequest struct {
	Name          string     `json:"name"`
	CreatedAt     *time.Time `json:"createdAt"`
	Calories      float64    `json:"calories"`
	Protein       float64    `json:"protein"`
	Carbohydrates float64    `json:"carbohydrates"`
	Fats          float64    `json:"fats"`
}

func (handler *Handler) HandleLogMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.logMeal")
	defer span.End()

	caller, ok := auth.FromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req logMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log meal, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid meal payload", http.StatusBadRequest)
		return
	}

	params := NewMealParams{
		Name:          req.Name,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fats:          req.Fats,
	}
	if req.CreatedAt != nil {
		params.CreatedAt = *req.CreatedAt
	}

	meal, err := handler.service.LogMeal(ctx, caller.UserID, params)
	if err != nil {
		writeError(w, "log meal", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "Meal logged",
		"meal":    meal,
	}, http.StatusCreated)
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrMemberNotFound):
		pkg.WriteJSONMessage(w, "Member not found", http.StatusNotFound)
	case errors.Is(err, ErrNegativeMacros):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
