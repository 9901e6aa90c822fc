package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMemberNotFound = errors.New("member not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// MealsInWindow returns the owner's meals with start <= created_at < endExclusive, oldest first.
func (r *Repo) MealsInWindow(ctx context.Context, ownerID string, start, endExclusive time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.mealsInWindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", ownerID))
	span.SetAttributes(attribute.String("start", start.String()))
	span.SetAttributes(attribute.String("end", endExclusive.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				meal_id, owner_id, name, created_at,
				COALESCE(calories, 0), COALESCE(protein, 0), COALESCE(carbohydrates, 0), COALESCE(fats, 0)
			FROM meals
			WHERE owner_id = $1 AND created_at >= $2 AND created_at < $3
			ORDER BY created_at ASC;`,
		ownerID, start, endExclusive,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	meals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Meal, error) {
		var m Meal
		err := row.Scan(&m.MealID, &m.OwnerID, &m.Name, &m.CreatedAt, &m.Calories, &m.Protein, &m.Carbohydrates, &m.Fats)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect meals: %w", err)
	}
	span.SetAttributes(attribute.Int("meals", len(meals)))

	return meals, nil
}

// MemberJoinedAt returns when the member joined their gym, or when the account
// was created if they never joined one.
func (r *Repo) MemberJoinedAt(ctx context.Context, memberID string) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.memberJoinedAt")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	var joinedAt time.Time
	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(joined_at, created_at) FROM users WHERE user_id = $1`,
		memberID,
	).Scan(&joinedAt); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("query member: %w", err)
	}

	return &joinedAt, nil
}

func (r *Repo) AddMeal(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", meal.OwnerID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO meals
				(meal_id, owner_id, name, created_at, calories, protein, carbohydrates, fats)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		meal.MealID, meal.OwnerID, meal.Name, meal.CreatedAt,
		meal.Calories, meal.Protein, meal.Carbohydrates, meal.Fats,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	return &meal, nil
}
