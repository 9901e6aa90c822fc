package exercises

import (
	"context"
	"fmt"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the gym's exercises, optionally narrowed to one muscle group.
func (r *Repo) List(ctx context.Context, gymID, muscleGroup string) (_ []GymExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))
	if muscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", muscleGroup))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				exercise_id, gym_id, name, muscle_group, description, equipment, created_by, created_at
			FROM gym_exercises
			WHERE gym_id = $1 AND ($2::text = '' OR muscle_group = $2)
			ORDER BY name ASC
		`,
		gymID,
		muscleGroup,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}

	exercises, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (GymExercise, error) {
		var e GymExercise
		err := row.Scan(&e.ExerciseID, &e.GymID, &e.Name, &e.MuscleGroup, &e.Description, &e.Equipment, &e.CreatedBy, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("exercises [collect]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) Add(ctx context.Context, exercise GymExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", exercise.GymID))
	span.SetAttributes(attribute.String("name", exercise.Name))

	if _, err := r.db.Exec(
		ctx,
		`
			INSERT INTO gym_exercises
				(exercise_id, gym_id, name, muscle_group, description, equipment, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
		exercise.ExerciseID, exercise.GymID, exercise.Name, exercise.MuscleGroup,
		exercise.Description, exercise.Equipment, exercise.CreatedBy, exercise.CreatedAt,
	); err != nil {
		return fmt.Errorf("exercise [insert]: %w", err)
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, gymID, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM gym_exercises WHERE exercise_id = $1 AND gym_id = $2`,
		exerciseID, gymID,
	)
	if err != nil {
		return fmt.Errorf("exercise [delete]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
