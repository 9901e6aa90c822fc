package gyms

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/internal/telemetry/tracing"
	"github.com/2beens/gymdesk/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gyms_test

type gymsService interface {
	CreateGym(ctx context.Context, caller auth.Identity, params NewGymParams) (*Gym, error)
	GetGym(ctx context.Context, caller auth.Identity) (*GymDetails, error)
	ListMembers(ctx context.Context, caller auth.Identity) ([]MemberSummary, error)
	AddMember(ctx context.Context, caller auth.Identity, code string) (string, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, memberID string, update ProfileUpdate) (*Profile, error)
	Register(ctx context.Context, caller auth.Identity, params RegisterParams) (*Profile, error)
	IssueConnectionCode(ctx context.Context, caller auth.Identity) (string, error)
}

type memberAccess interface {
	CanViewMember(ctx context.Context, caller auth.Identity, memberID string) error
	ManagedMemberGym(ctx context.Context, caller auth.Identity, memberID string) (string, error)
}

type Handler struct {
	service gymsService
	access  memberAccess
}

func NewHandler(service gymsService, access memberAccess) *Handler {
	return &Handler{
		service: service,
		access:  access,
	}
}

func (handler *Handler) HandleGetGym(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.get")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	gym, err := handler.service.GetGym(ctx, *caller)
	if err != nil {
		writeError(w, "get gym", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"gym": gym}, http.StatusOK)
}

func (handler *Handler) HandleCreateGym(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.create")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	var params NewGymParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("create gym, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid gym payload", http.StatusBadRequest)
		return
	}

	gym, err := handler.service.CreateGym(ctx, *caller, params)
	if err != nil {
		writeError(w, "create gym", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "Gym created successfully",
		"gym":     gym,
	}, http.StatusCreated)
}

func (handler *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.members")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	members, err := handler.service.ListMembers(ctx, *caller)
	if err != nil {
		writeError(w, "list members", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"members": members}, http.StatusOK)
}

type addMemberRequest struct {
	ConnectionCode string `json:"connectionCode"`
}

func (handler *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.addMember")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add member, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	memberID, err := handler.service.AddMember(ctx, *caller, req.ConnectionCode)
	if err != nil {
		writeError(w, "add member", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message":  "Member added successfully",
		"memberId": memberID,
	}, http.StatusOK)
}

func (handler *Handler) HandleGetMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.getMember")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	memberID := mux.Vars(r)["id"]
	if err := handler.access.CanViewMember(ctx, *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return
	}

	profile, err := handler.service.GetProfile(ctx, memberID)
	if err != nil {
		writeError(w, "get member profile", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"profile": profile,
	}, http.StatusOK)
}

func (handler *Handler) HandleUpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gyms.updateMember")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	memberID := mux.Vars(r)["id"]
	if _, err := handler.access.ManagedMemberGym(ctx, *caller, memberID); err != nil {
		writeError(w, "check member access", err)
		return
	}

	var update ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update member, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid member payload", http.StatusBadRequest)
		return
	}

	profile, err := handler.service.UpdateProfile(ctx, memberID, update)
	if err != nil {
		writeError(w, "update member", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"success": true,
		"message": "Member updated successfully",
		"profile": profile,
	}, http.StatusOK)
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	profile, err := handler.service.GetProfile(ctx, caller.UserID)
	if err != nil {
		writeError(w, "get own profile", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"user": map[string]any{
			"userId": profile.UserID,
			"name":   profile.Name,
			"email":  profile.Email,
			"gymId":  profile.GymID,
			"role":   profile.Role,
		},
	}, http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	// empty body registers with the token's claims
	var params RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("register, unmarshal json: %s", err)
		pkg.WriteJSONMessage(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	profile, err := handler.service.Register(ctx, *caller, params)
	if err != nil {
		writeError(w, "register", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{
		"message": "User registered successfully",
		"user":    profile,
	}, http.StatusCreated)
}

func (handler *Handler) HandleIssueConnectionCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.members.connectionCode")
	defer span.End()

	caller, ok := callerOrUnauthorized(w, r)
	if !ok {
		return
	}

	code, err := handler.service.IssueConnectionCode(ctx, *caller)
	if err != nil {
		writeError(w, "issue connection code", err)
		return
	}

	pkg.WriteJSON(w, map[string]any{"connectionCode": code}, http.StatusCreated)
}

func callerOrUnauthorized(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	caller, ok := auth.FromContext(r.Context())
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return caller, true
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrGymNotFound):
		pkg.WriteJSONMessage(w, "Gym not found", http.StatusNotFound)
	case errors.Is(err, ErrMemberNotFound):
		pkg.WriteJSONMessage(w, "User profile not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidConnectionCode):
		pkg.WriteJSONMessage(w, "Invalid connection code", http.StatusNotFound)
	case errors.Is(err, ErrProfileExists):
		pkg.WriteJSONMessage(w, "User profile already exists", http.StatusConflict)
	case errors.Is(err, ErrAlreadyInGym),
		errors.Is(err, ErrAlreadyMember),
		errors.Is(err, ErrConnectionCodeRequired),
		errors.Is(err, ErrGymNameRequired),
		errors.Is(err, ErrNothingToUpdate),
		errors.Is(err, ErrInvalidProfileUpdate):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONMessage(w, "Internal error", http.StatusInternalServerError)
	}
}
