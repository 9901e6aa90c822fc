package workoutplans

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `plan_id, member_id, gym_id, day_of_week, day_name, day_plan, exercises,
	created_by, created_at, updated_at, version`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListByMember(ctx context.Context, memberID string) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.listByMember")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE member_id = $1 ORDER BY day_of_week, updated_at;`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	plans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (WorkoutPlan, error) {
		return scanPlan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect plans: %w", err)
	}

	return plans, nil
}

func (r *Repo) MemberExists(ctx context.Context, memberID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.memberExists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1);`,
		memberID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("query member: %w", err)
	}

	return exists, nil
}

// GetByDay returns nil, nil when the member has no plan for day.
func (r *Repo) GetByDay(ctx context.Context, memberID string, day int) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.getByDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))
	span.SetAttributes(attribute.Int("day_of_week", day))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE member_id = $1 AND day_of_week = $2;`,
		memberID, day,
	)
	plan, err := scanPlan(row)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan by day: %w", err)
	}

	return &plan, nil
}

func (r *Repo) Get(ctx context.Context, planID string) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	row := r.db.QueryRow(ctx, `SELECT `+planColumns+` FROM workout_plans WHERE plan_id = $1;`, planID)
	plan, err := scanPlan(row)
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}

	return &plan, nil
}

// Save inserts a plan with Version 0, otherwise updates it only if the stored
// version still equals plan.Version. Losing either race gives ErrConcurrentModification.
func (r *Repo) Save(ctx context.Context, plan WorkoutPlan) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", plan.PlanID))
	span.SetAttributes(attribute.Int64("version", plan.Version))

	exercisesJSON, err := marshalExercises(plan.Exercises)
	if err != nil {
		return nil, err
	}

	if plan.Version == 0 {
		if _, err := r.db.Exec(
			ctx,
			`INSERT INTO workout_plans
					(plan_id, member_id, gym_id, day_of_week, day_name, day_plan, exercises,
					 created_by, created_at, updated_at, version)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1);`,
			plan.PlanID, plan.MemberID, plan.GymID, plan.DayOfWeek, plan.DayName, plan.DayPlan, exercisesJSON,
			plan.CreatedBy, plan.CreatedAt, plan.UpdatedAt,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return nil, fmt.Errorf("member %s already has a plan on day %d: %w", plan.MemberID, plan.DayOfWeek, ErrConcurrentModification)
			}
			return nil, fmt.Errorf("insert plan: %w", err)
		}
		plan.Version = 1
		return &plan, nil
	}

	var newVersion int64
	if err := r.db.QueryRow(
		ctx,
		`UPDATE workout_plans
			SET day_plan = $3, exercises = $4, updated_at = $5, version = version + 1
			WHERE plan_id = $1 AND version = $2
			RETURNING version;`,
		plan.PlanID, plan.Version, plan.DayPlan, exercisesJSON, plan.UpdatedAt,
	).Scan(&newVersion); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("update plan: %w", err)
	}
	plan.Version = newVersion

	return &plan, nil
}

// Mutate runs fn on the locked plan row inside a transaction and stores its result.
// An error from fn rolls back and is returned as is.
func (r *Repo) Mutate(ctx context.Context, planID string, fn func(WorkoutPlan) (WorkoutPlan, error)) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutplans.mutate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan_id", planID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		// no-op once committed
		_ = tx.Rollback(ctx)
	}()

	current, err := scanPlan(tx.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM workout_plans WHERE plan_id = $1 FOR UPDATE;`,
		planID,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("lock plan: %w", err)
	}

	updated, err := fn(current)
	if err != nil {
		return nil, err
	}

	exercisesJSON, err := marshalExercises(updated.Exercises)
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRow(
		ctx,
		`UPDATE workout_plans
			SET day_plan = $2, exercises = $3, updated_at = $4, version = version + 1
			WHERE plan_id = $1
			RETURNING version;`,
		planID, updated.DayPlan, exercisesJSON, updated.UpdatedAt,
	).Scan(&updated.Version); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	span.SetAttributes(attribute.Int64("version", updated.Version))

	return &updated, nil
}

func scanPlan(row pgx.Row) (WorkoutPlan, error) {
	var (
		plan          WorkoutPlan
		exercisesJSON []byte
	)
	if err := row.Scan(
		&plan.PlanID, &plan.MemberID, &plan.GymID, &plan.DayOfWeek, &plan.DayName, &plan.DayPlan, &exercisesJSON,
		&plan.CreatedBy, &plan.CreatedAt, &plan.UpdatedAt, &plan.Version,
	); err != nil {
		return WorkoutPlan{}, err
	}

	plan.Exercises = []Exercise{}
	if len(exercisesJSON) > 0 {
		if err := json.Unmarshal(exercisesJSON, &plan.Exercises); err != nil {
			return WorkoutPlan{}, fmt.Errorf("unmarshal exercises of plan %s: %w", plan.PlanID, err)
		}
	}

	return plan, nil
}

func marshalExercises(exercises []Exercise) (string, error) {
	if exercises == nil {
		exercises = []Exercise{}
	}
	exercisesJSON, err := json.Marshal(exercises)
	if err != nil {
		return "", fmt.Errorf("marshal exercises: %w", err)
	}
	return string(exercisesJSON), nil
}
