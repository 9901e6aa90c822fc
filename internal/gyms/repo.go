package gyms

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const profileColumns = `user_id, name, email, role, COALESCE(gym_id, ''), joined_at, created_at,
	height, weight, gender, age, weight_goal, conditions, dietary_preferences, COALESCE(plan_id, ''), discount`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateGym stores the gym and makes its owner a gym_owner of it.
func (r *Repo) CreateGym(ctx context.Context, gym Gym) (_ *Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", gym.OwnerID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var currentGymID string
	if err := tx.QueryRow(
		ctx,
		`SELECT COALESCE(gym_id, '') FROM users WHERE user_id = $1 FOR UPDATE;`,
		gym.OwnerID,
	).Scan(&currentGymID); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("lock owner: %w", err)
	}
	if currentGymID != "" {
		return nil, ErrAlreadyInGym
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO gyms (id, name, logo, address, working_days, contact_number, owner_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		gym.ID, gym.Name, gym.Logo, gym.Address, gym.WorkingDays, gym.ContactNumber, gym.OwnerID, gym.CreatedAt, gym.UpdatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAlreadyInGym
		}
		return nil, fmt.Errorf("insert gym: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE users SET gym_id = $1, role = $2, joined_at = COALESCE(joined_at, $3) WHERE user_id = $4;`,
		gym.ID, RoleGymOwner, gym.CreatedAt, gym.OwnerID,
	); err != nil {
		return nil, fmt.Errorf("update owner: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	gym.Members = []string{}
	return &gym, nil
}

// GymByOwner returns the owner's gym with the ids of its members, owner excluded.
func (r *Repo) GymByOwner(ctx context.Context, ownerID string) (_ *Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.byOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("owner_id", ownerID))

	var gym Gym
	if err := r.db.QueryRow(
		ctx,
		`SELECT
				g.id, g.name, g.logo, g.address, g.working_days, g.contact_number, g.owner_id, g.created_at, g.updated_at,
				ARRAY(SELECT u.user_id FROM users u WHERE u.gym_id = g.id AND u.user_id <> g.owner_id ORDER BY u.joined_at, u.user_id)
			FROM gyms g
			WHERE g.owner_id = $1;`,
		ownerID,
	).Scan(
		&gym.ID, &gym.Name, &gym.Logo, &gym.Address, &gym.WorkingDays, &gym.ContactNumber, &gym.OwnerID,
		&gym.CreatedAt, &gym.UpdatedAt, &gym.Members,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrGymNotFound
		}
		return nil, fmt.Errorf("get gym: %w", err)
	}

	return &gym, nil
}

func (r *Repo) GymIDByOwner(ctx context.Context, ownerID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.idByOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var gymID string
	if err := r.db.QueryRow(ctx, `SELECT id FROM gyms WHERE owner_id = $1;`, ownerID).Scan(&gymID); err != nil {
		if pkg.IsNoRows(err) {
			return "", ErrGymNotFound
		}
		return "", fmt.Errorf("get gym id: %w", err)
	}

	return gymID, nil
}

// MemberGymID returns the gym the user belongs to, or "" if none.
func (r *Repo) MemberGymID(ctx context.Context, memberID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.memberGymId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var gymID string
	if err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE(gym_id, '') FROM users WHERE user_id = $1;`,
		memberID,
	).Scan(&gymID); err != nil {
		if pkg.IsNoRows(err) {
			return "", ErrMemberNotFound
		}
		return "", fmt.Errorf("get member gym: %w", err)
	}

	return gymID, nil
}

func (r *Repo) Members(ctx context.Context, gymID string) (_ []MemberSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.members")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))

	rows, err := r.db.Query(
		ctx,
		`SELECT u.user_id, u.name, u.email, COALESCE(u.joined_at, u.created_at)
			FROM users u
			JOIN gyms g ON g.id = u.gym_id
			WHERE u.gym_id = $1 AND u.user_id <> g.owner_id
			ORDER BY u.joined_at, u.user_id;`,
		gymID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (MemberSummary, error) {
		var m MemberSummary
		err := row.Scan(&m.UserID, &m.Name, &m.Email, &m.JoinedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect members: %w", err)
	}

	return members, nil
}

func (r *Repo) Profile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var p Profile
	if err := r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM users WHERE user_id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Role, &p.GymID, &p.JoinedAt, &p.CreatedAt,
		&p.Height, &p.Weight, &p.Gender, &p.Age, &p.WeightGoal, &p.Conditions, &p.DietaryPreferences, &p.PlanID, &p.Discount,
	); err != nil {
		if pkg.IsNoRows(err) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

func (r *Repo) CreateProfile(ctx context.Context, profile Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.createProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", profile.UserID))

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO users (user_id, name, email, role, created_at) VALUES ($1, $2, $3, $4, $5);`,
		profile.UserID, profile.Name, profile.Email, profile.Role, profile.CreatedAt,
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}

	return nil
}

// UpdateProfile writes only the fields set in update.
func (r *Repo) UpdateProfile(ctx context.Context, memberID string, update ProfileUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", memberID))

	set := newSetClause()
	if update.JoiningDate.Set {
		joinedAt, err := update.joinedAt()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidProfileUpdate, err)
		}
		set.add("joined_at", joinedAt)
	}
	if update.PlanID.Set {
		set.add("plan_id", nullIfEmpty(update.PlanID.Value))
	}
	if update.Discount.Set {
		set.add("discount", update.Discount.Value)
	}
	if update.Height.Set {
		set.add("height", update.Height.Value)
	}
	if update.Weight.Set {
		set.add("weight", update.Weight.Value)
	}
	if update.Gender.Set {
		set.add("gender", update.Gender.Value)
	}
	if update.Age.Set {
		set.add("age", update.Age.Value)
	}
	if update.WeightGoal.Set {
		set.add("weight_goal", update.WeightGoal.Value)
	}
	if update.Conditions.Set {
		set.add("conditions", update.Conditions.Value)
	}
	if update.DietaryPreferences.Set {
		set.add("dietary_preferences", update.DietaryPreferences.Value)
	}
	if set.empty() {
		return ErrNothingToUpdate
	}

	args := append(set.args, memberID)
	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET `+set.String()+` WHERE user_id = $`+strconv.Itoa(len(args))+`;`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// JoinByCode moves the user holding code into gymID and clears the code.
func (r *Repo) JoinByCode(ctx context.Context, gymID, code string, joinedAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.joinByCode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("gym_id", gymID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var memberID, currentGymID string
	if err := tx.QueryRow(
		ctx,
		`SELECT user_id, COALESCE(gym_id, '') FROM users WHERE gym_connection_code = $1 FOR UPDATE;`,
		code,
	).Scan(&memberID, &currentGymID); err != nil {
		if pkg.IsNoRows(err) {
			return "", ErrInvalidConnectionCode
		}
		return "", fmt.Errorf("find code owner: %w", err)
	}
	switch currentGymID {
	case "":
	case gymID:
		return "", ErrAlreadyMember
	default:
		return "", ErrAlreadyInGym
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE users SET gym_id = $1, joined_at = $2, gym_connection_code = NULL WHERE user_id = $3;`,
		gymID, joinedAt, memberID,
	); err != nil {
		return "", fmt.Errorf("join gym: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE gyms SET updated_at = $1 WHERE id = $2;`, joinedAt, gymID); err != nil {
		return "", fmt.Errorf("touch gym: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	span.SetAttributes(attribute.String("member_id", memberID))

	return memberID, nil
}

func (r *Repo) SetConnectionCode(ctx context.Context, userID, code string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gyms.setConnectionCode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	tag, err := r.db.Exec(ctx, `UPDATE users SET gym_connection_code = $1 WHERE user_id = $2;`, code, userID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrConnectionCodeTaken
		}
		return fmt.Errorf("set connection code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

type setClause struct {
	columns []string
	args    []any
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.columns = append(s.columns, column+" = $"+strconv.Itoa(len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.columns) == 0
}

func (s *setClause) String() string {
	return strings.Join(s.columns, ", ")
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
