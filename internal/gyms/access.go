package gyms

import (
	"context"
	"errors"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=access_mocks_test.go -package=gyms

type accessRepo interface {
	GymIDByOwner(ctx context.Context, ownerID string) (string, error)
	MemberGymID(ctx context.Context, memberID string) (string, error)
}

// Access answers whether a caller may act on a gym or one of its members.
// Ownership is decided by gyms.owner_id, not by the caller's own gym_id.
type Access struct {
	repo accessRepo
}

func NewAccess(repo accessRepo) *Access {
	return &Access{
		repo: repo,
	}
}

// CallerGym returns the id of the gym the caller owns, or ErrNoGym.
func (a *Access) CallerGym(ctx context.Context, caller auth.Identity) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "access.callerGym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("caller_id", caller.UserID))

	gymID, err := a.repo.GymIDByOwner(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			return "", ErrNoGym
		}
		return "", err
	}
	return gymID, nil
}

// ManagedMemberGym returns the caller's gym id if memberID belongs to it.
func (a *Access) ManagedMemberGym(ctx context.Context, caller auth.Identity, memberID string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "access.managedMemberGym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("member_id", memberID))

	gymID, err := a.CallerGym(ctx, caller)
	if err != nil {
		return "", err
	}

	memberGymID, err := a.repo.MemberGymID(ctx, memberID)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return "", ErrMemberNotInGym
		}
		return "", err
	}
	if memberGymID != gymID {
		return "", ErrMemberNotInGym
	}

	return gymID, nil
}

// CanViewMember allows members to see their own data and gym owners to see their members' data.
func (a *Access) CanViewMember(ctx context.Context, caller auth.Identity, memberID string) error {
	if memberID != "" && caller.UserID == memberID {
		return nil
	}
	_, err := a.ManagedMemberGym(ctx, caller, memberID)
	return err
}

// MembershipGym returns the gym the caller belongs to, as owner or member.
func (a *Access) MembershipGym(ctx context.Context, caller auth.Identity) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "access.membershipGym")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("caller_id", caller.UserID))

	gymID, err := a.repo.MemberGymID(ctx, caller.UserID)
	if err != nil && !errors.Is(err, ErrMemberNotFound) {
		return "", err
	}
	if gymID == "" {
		return "", ErrNotInAnyGym
	}
	return gymID, nil
}
