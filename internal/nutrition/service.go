package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrNegativeMacros = errors.New("macro values must not be negative")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=nutrition

type mealsRepo interface {
	MealsInWindow(ctx context.Context, ownerID string, start, endExclusive time.Time) ([]Meal, error)
	MemberJoinedAt(ctx context.Context, memberID string) (*time.Time, error)
	AddMeal(ctx context.Context, meal Meal) (*Meal, error)
}

type Service struct {
	repo           mealsRepo
	resolver       Resolver
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(repo mealsRepo, resolver Resolver, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		resolver:       resolver,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// GetNutritionSummary returns the member's meals in the resolved window with their totals.
// An unknown range is logged and served as a single day.
func (s *Service) GetNutritionSummary(ctx context.Context, memberID string, date *time.Time, rng string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))
	span.SetAttributes(attribute.String("range", rng))

	// existence check doubles as the join date lookup for clamping
	joinedAt, err := s.repo.MemberJoinedAt(ctx, memberID)
	if err != nil {
		return nil, err
	}

	window, rangeErr := s.resolver.Resolve(s.now(), date, rng, joinedAt)
	if rangeErr != nil {
		if !errors.Is(rangeErr, ErrInvalidRange) {
			return nil, fmt.Errorf("resolve window: %w", rangeErr)
		}
		log.Debugf("nutrition summary for %s: %s, using %s", memberID, rangeErr, window.Range)
	}

	meals, err := s.repo.MealsInWindow(ctx, memberID, window.Start, window.EndExclusive())
	if err != nil {
		return nil, fmt.Errorf("get meals: %w", err)
	}
	if meals == nil {
		meals = []Meal{}
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterNutritionSummaries.WithLabelValues(string(window.Range)).Inc()
	}

	summary := &Summary{
		MemberID: memberID,
		Range:    window.Range,
		Window: WindowView{
			Start:   window.Start,
			End:     window.End,
			Divisor: window.Divisor,
		},
		MealsList: meals,
		Totals:    Aggregate(meals, window.Divisor, window.IsAverage),
	}
	if !window.IsAverage {
		summary.Date = window.Start.Format(pkg.DateLayout)
	}

	return summary, nil
}

type NewMealParams struct {
	Name          string
	CreatedAt     time.Time
	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fats          float64
}

// LogMeal records a meal for the given owner.
func (s *Service) LogMeal(ctx context.Context, ownerID string, params NewMealParams) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.logMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Calories < 0 || params.Protein < 0 || params.Carbohydrates < 0 || params.Fats < 0 {
		return nil, ErrNegativeMacros
	}

	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	return s.repo.AddMeal(ctx, Meal{
		MealID:        uuid.NewString(),
		OwnerID:       ownerID,
		Name:          params.Name,
		CreatedAt:     createdAt.UTC(),
		Calories:      params.Calories,
		Protein:       params.Protein,
		Carbohydrates: params.Carbohydrates,
		Fats:          params.Fats,
	})
}
