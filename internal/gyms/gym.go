package gyms

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/pkg"
)

const (
	RoleMember   = "member"
	RoleGymOwner = "gym_owner"
)

var (
	ErrGymNotFound            = errors.New("gym not found")
	ErrMemberNotFound         = errors.New("user profile not found")
	ErrAlreadyInGym           = errors.New("user already owns or belongs to a gym")
	ErrAlreadyMember          = errors.New("user is already a member of this gym")
	ErrInvalidConnectionCode  = errors.New("invalid connection code")
	ErrConnectionCodeRequired = errors.New("connection code is required")
	ErrConnectionCodeTaken    = errors.New("connection code already in use")
	ErrProfileExists          = errors.New("user profile already exists")
	ErrGymNameRequired        = errors.New("gym name is required")
	ErrNothingToUpdate        = errors.New("no fields to update")
	ErrInvalidProfileUpdate   = errors.New("invalid profile update")
	ErrNoGym                  = fmt.Errorf("%w: you do not own a gym", auth.ErrForbidden)
	ErrMemberNotInGym         = fmt.Errorf("%w: this member does not belong to your gym", auth.ErrForbidden)
	ErrNotInAnyGym            = fmt.Errorf("%w: you are not a member of any gym", auth.ErrForbidden)
)

type Gym struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo"`
	Address       string    `json:"address"`
	WorkingDays   []string  `json:"workingDays"`
	ContactNumber string    `json:"contactNumber"`
	OwnerID       string    `json:"ownerId"`
	Members       []string  `json:"members"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type MemberSummary struct {
	UserID   string     `json:"userId"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	JoinedAt *time.Time `json:"joinedAt"`
}

type GymDetails struct {
	Gym
	MembersWithDetails []MemberSummary `json:"membersWithDetails"`
}

// Profile is a user's stored profile. The connection code is never part of it.
type Profile struct {
	UserID             string     `json:"userId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	GymID              string     `json:"gymId,omitempty"`
	JoinedAt           *time.Time `json:"joinedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	Height             *float64   `json:"height"`
	Weight             *float64   `json:"weight"`
	Gender             string     `json:"gender"`
	Age                *int       `json:"age"`
	WeightGoal         string     `json:"weightGoal"`
	Conditions         string     `json:"conditions"`
	DietaryPreferences string     `json:"dietaryPreferences"`
	PlanID             string     `json:"planId"`
	Discount           *float64   `json:"discount"`
}

// ProfileUpdate is the field update set for a member profile.
type ProfileUpdate struct {
	JoiningDate        pkg.Optional[string]   `json:"joiningDate"`
	PlanID             pkg.Optional[string]   `json:"planId"`
	Discount           pkg.Optional[*float64] `json:"discount"`
	Height             pkg.Optional[*float64] `json:"height"`
	Weight             pkg.Optional[*float64] `json:"weight"`
	Gender             pkg.Optional[string]   `json:"gender"`
	Age                pkg.Optional[*int]     `json:"age"`
	WeightGoal         pkg.Optional[string]   `json:"weightGoal"`
	Conditions         pkg.Optional[string]   `json:"conditions"`
	DietaryPreferences pkg.Optional[string]   `json:"dietaryPreferences"`
}

func (u ProfileUpdate) isEmpty() bool {
	return !u.JoiningDate.Set && !u.PlanID.Set && !u.Discount.Set && !u.Height.Set && !u.Weight.Set &&
		!u.Gender.Set && !u.Age.Set && !u.WeightGoal.Set && !u.Conditions.Set && !u.DietaryPreferences.Set
}

// joinedAt parses JoiningDate. An empty date clears it.
func (u ProfileUpdate) joinedAt() (*time.Time, error) {
	return pkg.ParseDate(u.JoiningDate.Value)
}

func (u ProfileUpdate) validate() error {
	if u.JoiningDate.Set {
		if _, err := u.joinedAt(); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidProfileUpdate, err)
		}
	}
	if v := u.Discount.Value; u.Discount.Set && v != nil && (*v < 0 || *v > 100) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidProfileUpdate)
	}
	if v := u.Height.Value; u.Height.Set && v != nil && *v <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfileUpdate)
	}
	if v := u.Weight.Value; u.Weight.Set && v != nil && *v <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfileUpdate)
	}
	if v := u.Age.Value; u.Age.Set && v != nil && *v <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfileUpdate)
	}
	return nil
}

type NewGymParams struct {
	Name          string   `json:"name"`
	Logo          string   `json:"logo"`
	Address       string   `json:"address"`
	WorkingDays   []string `json:"workingDays"`
	ContactNumber string   `json:"contactNumber"`
}

type RegisterParams struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
