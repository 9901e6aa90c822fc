package workouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

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

func (r *Repo) ListAssigned(ctx context.Context, memberID string, day time.Time) (_ []AssignedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAssigned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))
	span.SetAttributes(attribute.String("date", day.Format(pkg.DateLayout)))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, member_id, workout_date, exercise_id, exercise_name,
				sets, reps, weight, notes, assigned_by, completed, created_at
			FROM assigned_workouts
			WHERE member_id = $1 AND workout_date = $2::date
			ORDER BY created_at ASC
		`,
		memberID, day.Format(pkg.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	workouts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (AssignedWorkout, error) {
		var (
			w    AssignedWorkout
			date time.Time
		)
		err := row.Scan(
			&w.ID, &w.MemberID, &date, &w.ExerciseID, &w.ExerciseName,
			&w.Sets, &w.Reps, &w.Weight, &w.Notes, &w.AssignedBy, &w.Completed, &w.CreatedAt,
		)
		w.Date = date.Format(pkg.DateLayout)
		return w, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect workouts: %w", err)
	}

	return workouts, nil
}

func (r *Repo) Assign(ctx context.Context, w AssignedWorkout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.assign")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", w.MemberID))
	span.SetAttributes(attribute.String("exercise_id", w.ExerciseID))

	if _, err := r.db.Exec(
		ctx,
		`
			INSERT INTO assigned_workouts
				(id, member_id, workout_date, exercise_id, exercise_name,
				 sets, reps, weight, notes, assigned_by, completed, created_at)
			VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`,
		w.ID, w.MemberID, w.Date, w.ExerciseID, w.ExerciseName,
		w.Sets, w.Reps, w.Weight, w.Notes, w.AssignedBy, w.Completed, w.CreatedAt,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("member %s: %w", w.MemberID, ErrMemberNotFound)
		}
		return fmt.Errorf("insert workout: %w", err)
	}

	return nil
}

// GetLog returns the member's log for the day, or nil if none was saved.
func (r *Repo) GetLog(ctx context.Context, memberID string, day time.Time) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	wl, err := scanLog(r.db.QueryRow(
		ctx,
		`
			SELECT id, member_id, log_date, completed_exercises, notes, created_at, updated_at
			FROM workout_logs
			WHERE member_id = $1 AND log_date = $2::date
		`,
		memberID, day.Format(pkg.DateLayout),
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get log: %w", err)
	}

	return wl, nil
}

// UpsertLog writes the log keeping one row per member and day.
func (r *Repo) UpsertLog(ctx context.Context, wl WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.upsertLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", wl.MemberID))
	span.SetAttributes(attribute.Int("completed", len(wl.CompletedExercises)))

	completed, err := json.Marshal(wl.CompletedExercises)
	if err != nil {
		return nil, fmt.Errorf("marshal completed exercises: %w", err)
	}

	saved, err := scanLog(r.db.QueryRow(
		ctx,
		`
			INSERT INTO workout_logs
				(id, member_id, log_date, completed_exercises, notes, created_at, updated_at)
			VALUES ($1, $2, $3::date, $4::jsonb, $5, $6, $6)
			ON CONFLICT (member_id, log_date) DO UPDATE SET
				completed_exercises = EXCLUDED.completed_exercises,
				notes = EXCLUDED.notes,
				updated_at = EXCLUDED.updated_at
			RETURNING id, member_id, log_date, completed_exercises, notes, created_at, updated_at
		`,
		wl.ID, wl.MemberID, wl.Date, string(completed), wl.Notes, wl.UpdatedAt,
	))
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("member %s: %w", wl.MemberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("upsert log: %w", err)
	}

	return saved, nil
}

func scanLog(row pgx.Row) (*WorkoutLog, error) {
	var (
		wl        WorkoutLog
		date      time.Time
		completed []byte
	)
	if err := row.Scan(&wl.ID, &wl.MemberID, &date, &completed, &wl.Notes, &wl.CreatedAt, &wl.UpdatedAt); err != nil {
		return nil, err
	}
	wl.Date = date.Format(pkg.DateLayout)
	if err := json.Unmarshal(completed, &wl.CompletedExercises); err != nil {
		return nil, fmt.Errorf("unmarshal completed exercises: %w", err)
	}
	if wl.CompletedExercises == nil {
		wl.CompletedExercises = []string{}
	}
	return &wl, nil
}
