package membership

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=membership

type plansRepo interface {
	List(ctx context.Context, gymID string) ([]Plan, error)
	Create(ctx context.Context, plan Plan) (*Plan, error)
	Update(ctx context.Context, gymID, planID string, update PlanUpdate, now time.Time) (*Plan, error)
	Delete(ctx context.Context, gymID, planID string) error
}

type Service struct {
	repo  plansRepo
	now   func() time.Time
	newID func() string
}

func NewService(repo plansRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) ListPlans(ctx context.Context, gymID string) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.membership.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plans, err := s.repo.List(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []Plan{}
	}
	span.SetAttributes(attribute.Int("plans", len(plans)))

	return plans, nil
}

func (s *Service) CreatePlan(ctx context.Context, gymID string, params NewPlanParams) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.membership.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := params.validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.repo.Create(ctx, Plan{
		ID:          s.newID(),
		GymID:       gymID,
		Name:        strings.TrimSpace(params.Name),
		Price:       params.Price,
		Duration:    strings.TrimSpace(params.Duration),
		Description: params.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *Service) UpdatePlan(ctx context.Context, gymID, planID string, update PlanUpdate) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.membership.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	if update.isEmpty() {
		return nil, ErrNothingToUpdate
	}
	if err := update.validate(); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, gymID, planID, update, s.now().UTC())
}

func (s *Service) DeletePlan(ctx context.Context, gymID, planID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.membership.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	return s.repo.Delete(ctx, gymID, planID)
}
