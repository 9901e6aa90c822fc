package workoutplans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/events"
	"github.com/2beens/gymdesk/internal/telemetry/metrics"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanForeignGym = fmt.Errorf("%w: this plan does not belong to your gym", auth.ErrForbidden)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workoutplans

type plansRepo interface {
	ListByMember(ctx context.Context, memberID string) ([]WorkoutPlan, error)
	MemberExists(ctx context.Context, memberID string) (bool, error)
	GetByDay(ctx context.Context, memberID string, day int) (*WorkoutPlan, error)
	Get(ctx context.Context, planID string) (*WorkoutPlan, error)
	Save(ctx context.Context, plan WorkoutPlan) (*WorkoutPlan, error)
	Mutate(ctx context.Context, planID string, fn func(WorkoutPlan) (WorkoutPlan, error)) (*WorkoutPlan, error)
}

type eventPublisher interface {
	PublishPlanChanged(ctx context.Context, event events.PlanChanged) error
}

type Service struct {
	repo           plansRepo
	publisher      eventPublisher
	metricsManager *metrics.Manager
	now            func() time.Time
	newID          func() string
}

func NewService(repo plansRepo, publisher eventPublisher, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		publisher:      publisher,
		metricsManager: metricsManager,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

func (s *Service) GetWeeklySchedule(ctx context.Context, memberID string) (_ WeeklySchedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplans.weeklySchedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	plans, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return WeeklySchedule{}, fmt.Errorf("list plans: %w", err)
	}

	// plans reference users, so only an empty list needs the member check
	if len(plans) == 0 {
		exists, err := s.repo.MemberExists(ctx, memberID)
		if err != nil {
			return WeeklySchedule{}, fmt.Errorf("check member: %w", err)
		}
		if !exists {
			return WeeklySchedule{}, ErrMemberNotFound
		}
	}

	return Assemble(plans), nil
}

// GetPlan returns a single plan by id. The plan must belong to gymID.
func (s *Service) GetPlan(ctx context.Context, gymID, planID string) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplans.getPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	plan, err := s.repo.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.GymID != gymID {
		return nil, ErrPlanForeignGym
	}

	return plan, nil
}

// UpsertDayPlan creates or partially updates the member's plan for update.DayOfWeek.
// The caller must already be allowed to manage the member within gymID.
func (s *Service) UpsertDayPlan(
	ctx context.Context,
	caller auth.Identity,
	gymID, memberID string,
	update DayPlanUpdate,
) (_ *WorkoutPlan, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplans.upsertDayPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))
	span.SetAttributes(attribute.Int("day_of_week", update.DayOfWeek))

	if !ValidDayOfWeek(update.DayOfWeek) {
		return nil, false, ErrInvalidDayOfWeek
	}

	existing, err := s.repo.GetByDay(ctx, memberID, update.DayOfWeek)
	if err != nil {
		return nil, false, fmt.Errorf("get existing plan: %w", err)
	}
	var existingPlans []WorkoutPlan
	if existing != nil {
		existingPlans = append(existingPlans, *existing)
	}

	plan, created := Upsert(existingPlans, update, NewPlanMeta{
		PlanID:    s.newID(),
		MemberID:  memberID,
		GymID:     gymID,
		CreatedBy: caller.UserID,
		Now:       s.now(),
	})

	saved, err := s.repo.Save(ctx, plan)
	if err != nil {
		s.countConflict(err)
		return nil, false, fmt.Errorf("save plan: %w", err)
	}

	op := events.PlanOpUpdated
	if created {
		op = events.PlanOpCreated
	}
	s.planChanged(ctx, op, saved)

	return saved, created, nil
}

// AddExerciseToPlan appends exercise to the plan. The plan must belong to gymID.
func (s *Service) AddExerciseToPlan(ctx context.Context, gymID, planID string, exercise Exercise) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplans.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	if strings.TrimSpace(exercise.ExerciseID) == "" && strings.TrimSpace(exercise.ExerciseName) == "" {
		return nil, ErrInvalidExercise
	}

	plan, err := s.repo.Mutate(ctx, planID, func(plan WorkoutPlan) (WorkoutPlan, error) {
		if plan.GymID != gymID {
			return plan, ErrPlanForeignGym
		}
		plan = Append(plan, exercise)
		plan.UpdatedAt = s.now()
		return plan, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	s.planChanged(ctx, events.PlanOpExerciseAdded, plan)
	return plan, nil
}

// RemoveExerciseFromPlan deletes the exercise at order and renumbers the rest.
// An order not present in the plan leaves the exercise list as is.
func (s *Service) RemoveExerciseFromPlan(ctx context.Context, gymID, planID string, order int) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplans.removeExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))
	span.SetAttributes(attribute.Int("order", order))

	plan, err := s.repo.Mutate(ctx, planID, func(plan WorkoutPlan) (WorkoutPlan, error) {
		if plan.GymID != gymID {
			return plan, ErrPlanForeignGym
		}
		plan = Remove(plan, order)
		plan.UpdatedAt = s.now()
		return plan, nil
	})
	if err != nil {
		return nil, fmt.Errorf("remove exercise: %w", err)
	}

	s.planChanged(ctx, events.PlanOpExerciseRemoved, plan)
	return plan, nil
}

func (s *Service) countConflict(err error) {
	if s.metricsManager != nil && errors.Is(err, ErrConcurrentModification) {
		s.metricsManager.CounterConcurrentMods.Inc()
	}
}

// planChanged records a committed mutation. Publish failures are only logged.
func (s *Service) planChanged(ctx context.Context, op events.PlanOp, plan *WorkoutPlan) {
	if s.metricsManager != nil {
		s.metricsManager.CounterPlanMutations.WithLabelValues(string(op)).Inc()
	}
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishPlanChanged(ctx, events.PlanChanged{
		Type:          events.TypePlanChanged,
		Op:            op,
		PlanID:        plan.PlanID,
		MemberID:      plan.MemberID,
		GymID:         plan.GymID,
		DayOfWeek:     plan.DayOfWeek,
		Version:       plan.Version,
		ExerciseCount: len(plan.Exercises),
		OccurredAt:    plan.UpdatedAt,
	}); err != nil {
		log.Errorf("publish %s for plan %s: %s", op, plan.PlanID, err)
	}
}
