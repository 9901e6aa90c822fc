package gyms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	connectionCodeLength   = 8
	connectionCodeAttempts = 3
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gyms

type gymsRepo interface {
	CreateGym(ctx context.Context, gym Gym) (*Gym, error)
	GymByOwner(ctx context.Context, ownerID string) (*Gym, error)
	GymIDByOwner(ctx context.Context, ownerID string) (string, error)
	Members(ctx context.Context, gymID string) ([]MemberSummary, error)
	Profile(ctx context.Context, userID string) (*Profile, error)
	CreateProfile(ctx context.Context, profile Profile) error
	UpdateProfile(ctx context.Context, memberID string, update ProfileUpdate) error
	JoinByCode(ctx context.Context, gymID, code string, joinedAt time.Time) (string, error)
	SetConnectionCode(ctx context.Context, userID, code string) error
}

type Service struct {
	repo    gymsRepo
	now     func() time.Time
	newID   func() string
	newCode func() (string, error)
}

func NewService(repo gymsRepo) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
		newCode: func() (string, error) {
			return pkg.GenerateConnectionCode(connectionCodeLength)
		},
	}
}

// CreateGym creates a gym owned by the caller, who must not belong to a gym yet.
func (s *Service) CreateGym(ctx context.Context, caller auth.Identity, params NewGymParams) (_ *Gym, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrGymNameRequired
	}

	workingDays := params.WorkingDays
	if workingDays == nil {
		workingDays = []string{}
	}

	now := s.now().UTC()
	gym, err := s.repo.CreateGym(ctx, Gym{
		ID:            s.newID(),
		Name:          strings.TrimSpace(params.Name),
		Logo:          params.Logo,
		Address:       params.Address,
		WorkingDays:   workingDays,
		ContactNumber: params.ContactNumber,
		OwnerID:       caller.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("gym_id", gym.ID))

	log.Infof("gym %s created by %s", gym.ID, caller.UserID)
	return gym, nil
}

// GetGym returns the caller's gym with a short profile of every member.
func (s *Service) GetGym(ctx context.Context, caller auth.Identity) (_ *GymDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gym, err := s.repo.GymByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, gym.ID)
	if err != nil {
		return nil, fmt.Errorf("get members: %w", err)
	}
	if members == nil {
		members = []MemberSummary{}
	}

	return &GymDetails{
		Gym:                *gym,
		MembersWithDetails: members,
	}, nil
}

func (s *Service) ListMembers(ctx context.Context, caller auth.Identity) (_ []MemberSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.listMembers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	gymID, err := s.repo.GymIDByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.Members(ctx, gymID)
	if err != nil {
		return nil, fmt.Errorf("get members: %w", err)
	}
	if members == nil {
		members = []MemberSummary{}
	}

	return members, nil
}

// AddMember joins the user holding the connection code to the caller's gym.
func (s *Service) AddMember(ctx context.Context, caller auth.Identity, code string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.addMember")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", ErrConnectionCodeRequired
	}

	gymID, err := s.repo.GymIDByOwner(ctx, caller.UserID)
	if err != nil {
		return "", err
	}

	memberID, err := s.repo.JoinByCode(ctx, gymID, code, s.now().UTC())
	if err != nil {
		return "", err
	}

	log.Infof("member %s joined gym %s", memberID, gymID)
	return memberID, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	profile, err := s.repo.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.JoinedAt == nil {
		createdAt := profile.CreatedAt
		profile.JoinedAt = &createdAt
	}

	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, memberID string, update ProfileUpdate) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if update.isEmpty() {
		return nil, ErrNothingToUpdate
	}
	if err := update.validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateProfile(ctx, memberID, update); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, memberID)
}

// Register creates the caller's profile. Name and email fall back to the token's claims.
func (s *Service) Register(ctx context.Context, caller auth.Identity, params RegisterParams) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile := Profile{
		UserID:    caller.UserID,
		Name:      strings.TrimSpace(params.Name),
		Email:     strings.TrimSpace(params.Email),
		Role:      RoleMember,
		CreatedAt: s.now().UTC(),
	}
	if profile.Name == "" {
		profile.Name = caller.Name
	}
	if profile.Email == "" {
		profile.Email = caller.Email
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// IssueConnectionCode gives the caller a fresh code, replacing any previous one.
func (s *Service) IssueConnectionCode(ctx context.Context, caller auth.Identity) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gyms.issueConnectionCode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for attempt := 1; attempt <= connectionCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}

		err = s.repo.SetConnectionCode(ctx, caller.UserID, code)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrConnectionCodeTaken) {
			return "", err
		}
		log.Debugf("connection code collision, attempt %d", attempt)
	}

	return "", ErrConnectionCodeTaken
}
