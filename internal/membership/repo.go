package membership

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `id, gym_id, name, price, duration, description, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, gymID string) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.membership.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+planColumns+` FROM membership_plans WHERE gym_id = $1 ORDER BY created_at ASC`,
		gymID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	plans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Plan, error) {
		return scanPlan(row)
	})
	if err != nil {
		return nil, fmt.Errorf("collect plans: %w", err)
	}

	return plans, nil
}

func (r *Repo) Create(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.membership.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", plan.GymID))

	created, err := scanPlan(r.db.QueryRow(
		ctx,
		`INSERT INTO membership_plans
				(id, gym_id, name, price, duration, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+planColumns,
		plan.ID, plan.GymID, plan.Name, plan.Price, plan.Duration, plan.Description, plan.CreatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	return &created, nil
}

// Update writes the set fields of update in a single statement.
func (r *Repo) Update(ctx context.Context, gymID, planID string, update PlanUpdate, now time.Time) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.membership.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))
	span.SetAttributes(attribute.String("plan_id", planID))

	updated, err := scanPlan(r.db.QueryRow(
		ctx,
		`
			UPDATE membership_plans SET
				name        = CASE WHEN $3::boolean THEN $4::text ELSE name END,
				price       = CASE WHEN $5::boolean THEN $6::double precision ELSE price END,
				duration    = CASE WHEN $7::boolean THEN $8::text ELSE duration END,
				description = CASE WHEN $9::boolean THEN $10::text ELSE description END,
				updated_at  = $11
			WHERE id = $1 AND gym_id = $2
			RETURNING `+planColumns,
		planID, gymID,
		update.Name.Set, update.Name.Value,
		update.Price.Set, update.Price.Value,
		update.Duration.Set, update.Duration.Value,
		update.Description.Set, update.Description.Value,
		now,
	))
	if err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("update plan: %w", err)
	}

	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, gymID, planID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.membership.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))
	span.SetAttributes(attribute.String("plan_id", planID))

	tag, err := r.db.Exec(ctx, `DELETE FROM membership_plans WHERE id = $1 AND gym_id = $2`, planID, gymID)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func scanPlan(row pgx.Row) (Plan, error) {
	var p Plan
	err := row.Scan(&p.ID, &p.GymID, &p.Name, &p.Price, &p.Duration, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
