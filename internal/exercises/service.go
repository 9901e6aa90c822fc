package exercises

import (
	"context"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises

type exercisesRepo interface {
	List(ctx context.Context, gymID, muscleGroup string) ([]GymExercise, error)
	Add(ctx context.Context, exercise GymExercise) error
	Delete(ctx context.Context, gymID, exerciseID string) error
}

type Service struct {
	repo  exercisesRepo
	now   func() time.Time
	newID func() string
}

func NewService(repo exercisesRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (s *Service) ListExercises(ctx context.Context, gymID, muscleGroup string) (_ []GymExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercises, err := s.repo.List(ctx, gymID, strings.TrimSpace(muscleGroup))
	if err != nil {
		return nil, err
	}
	if exercises == nil {
		exercises = []GymExercise{}
	}
	return exercises, nil
}

func (s *Service) AddExercise(ctx context.Context, caller auth.Identity, gymID string, params NewExerciseParams) (_ *GymExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exercise := GymExercise{
		ExerciseID:  s.newID(),
		GymID:       gymID,
		Name:        name,
		MuscleGroup: strings.TrimSpace(params.MuscleGroup),
		Description: params.Description,
		Equipment:   params.Equipment,
		CreatedBy:   caller.UserID,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Add(ctx, exercise); err != nil {
		return nil, err
	}

	log.Debugf("exercise %s [%s] added to gym %s", exercise.ExerciseID, exercise.Name, gymID)
	return &exercise, nil
}

func (s *Service) DeleteExercise(ctx context.Context, gymID, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.Delete(ctx, gymID, exerciseID)
}
