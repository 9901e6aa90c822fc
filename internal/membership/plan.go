package membership

import (
	"errors"
	"strings"
	"time"

	"github.com/2beens/gymdesk/pkg"
)

var (
	ErrPlanNotFound       = errors.New("membership plan not found")
	ErrMissingPlanFields  = errors.New("name, price and duration are required")
	ErrInvalidPlanPrice   = errors.New("price must be greater than zero")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrInvalidPlanPayload = errors.New("name and duration must not be empty")
)

// Plan is a membership plan a gym sells to its members.
type Plan struct {
	ID          string    `json:"id"`
	GymID       string    `json:"gymId"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewPlanParams struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"` // e.g. "1 month", "1 year"
	Description string  `json:"description"`
}

func (p NewPlanParams) validate() error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Duration) == "" || p.Price == 0 {
		return ErrMissingPlanFields
	}
	if p.Price < 0 {
		return ErrInvalidPlanPrice
	}
	return nil
}

// PlanUpdate carries only the fields the client sent.
type PlanUpdate struct {
	Name        pkg.Optional[string]  `json:"name"`
	Price       pkg.Optional[float64] `json:"price"`
	Duration    pkg.Optional[string]  `json:"duration"`
	Description pkg.Optional[string]  `json:"description"`
}

func (u PlanUpdate) isEmpty() bool {
	return !u.Name.Set && !u.Price.Set && !u.Duration.Set && !u.Description.Set
}

func (u PlanUpdate) validate() error {
	if u.Name.Set && strings.TrimSpace(u.Name.Value) == "" {
		return ErrInvalidPlanPayload
	}
	if u.Duration.Set && strings.TrimSpace(u.Duration.Value) == "" {
		return ErrInvalidPlanPayload
	}
	if u.Price.Set && u.Price.Value <= 0 {
		return ErrInvalidPlanPrice
	}
	return nil
}
