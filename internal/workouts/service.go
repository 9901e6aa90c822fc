package workouts

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

type workoutsRepo interface {
	ListAssigned(ctx context.Context, memberID string, day time.Time) ([]AssignedWorkout, error)
	Assign(ctx context.Context, w AssignedWorkout) error
	GetLog(ctx context.Context, memberID string, day time.Time) (*WorkoutLog, error)
	UpsertLog(ctx context.Context, wl WorkoutLog) (*WorkoutLog, error)
}

type Service struct {
	repo  workoutsRepo
	now   func() time.Time
	newID func() string
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) ListAssigned(ctx context.Context, memberID, date string) (_ []AssignedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.listAssigned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	workouts, err := s.repo.ListAssigned(ctx, memberID, day)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []AssignedWorkout{}
	}
	return workouts, nil
}

// AssignWorkout schedules an exercise for the member. Missing counts default to zero.
func (s *Service) AssignWorkout(ctx context.Context, caller auth.Identity, memberID string, params AssignParams) (_ *AssignedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	if strings.TrimSpace(params.Date) == "" || strings.TrimSpace(params.ExerciseID) == "" {
		return nil, ErrAssignmentInvalid
	}
	day, err := parseDay(params.Date)
	if err != nil {
		return nil, err
	}
	if params.Sets < 0 || params.Reps < 0 || params.Weight < 0 {
		return nil, ErrNegativeLoad
	}

	name := strings.TrimSpace(params.ExerciseName)
	if name == "" {
		name = unknownExerciseName
	}

	w := AssignedWorkout{
		ID:           s.newID(),
		MemberID:     memberID,
		Date:         day.Format(pkg.DateLayout),
		ExerciseID:   strings.TrimSpace(params.ExerciseID),
		ExerciseName: name,
		Sets:         params.Sets,
		Reps:         params.Reps,
		Weight:       params.Weight,
		Notes:        params.Notes,
		AssignedBy:   caller.UserID,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Assign(ctx, w); err != nil {
		return nil, err
	}

	return &w, nil
}

// GetLog returns nil without error when the member logged nothing that day.
func (s *Service) GetLog(ctx context.Context, memberID, date string) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	return s.repo.GetLog(ctx, memberID, day)
}

// SaveLog replaces the member's log for the day.
func (s *Service) SaveLog(ctx context.Context, caller auth.Identity, memberID, date string, update LogUpdate) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.saveLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	if caller.UserID != memberID {
		return nil, ErrForeignLog
	}

	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.repo.UpsertLog(ctx, WorkoutLog{
		ID:                 s.newID(),
		MemberID:           memberID,
		Date:               day.Format(pkg.DateLayout),
		CompletedExercises: uniqueIDs(update.CompletedExercises),
		Notes:              update.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}
