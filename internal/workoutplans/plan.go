package workoutplans

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/gymdesk/pkg"
)

const DaysInWeek = 7

var (
	ErrPlanNotFound           = errors.New("workout plan not found")
	ErrMemberNotFound         = errors.New("member not found")
	ErrConcurrentModification = errors.New("workout plan was modified concurrently")
	ErrInvalidDayOfWeek       = errors.New("day of week must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidExercise        = errors.New("exercise id or name required")
)

// Exercise is one entry of a plan's ordered exercise list. Order is 1-based.
type Exercise struct {
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Duration     int    `json:"duration"`
	RestTime     int    `json:"restTime"`
	Notes        string `json:"notes"`
	Order        int    `json:"order"`
}

// WorkoutPlan is a member's plan for one day of the week. There is at most one
// plan per (MemberID, DayOfWeek).
type WorkoutPlan struct {
	PlanID    string     `json:"planId"`
	MemberID  string     `json:"memberId"`
	GymID     string     `json:"gymId"`
	DayOfWeek int        `json:"dayOfWeek"`
	DayName   string     `json:"dayName"`
	DayPlan   string     `json:"dayPlan"`
	Exercises []Exercise `json:"exercises"`
	CreatedBy string     `json:"createdBy"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	// Version is bumped on every write; zero means the plan was never stored.
	Version int64 `json:"version"`
}

func ValidDayOfWeek(day int) bool {
	return day >= 0 && day < DaysInWeek
}

// WeeklySchedule has one slot per day, 0=Sunday .. 6=Saturday. Empty days are nil.
type WeeklySchedule [DaysInWeek]*WorkoutPlan

// MarshalJSON encodes the schedule as {"0": plan|null, ..., "6": plan|null}.
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for day, plan := range s {
		if day > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + strconv.Itoa(day) + `":`)
		planJSON, err := json.Marshal(plan)
		if err != nil {
			return nil, err
		}
		buf.Write(planJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var days map[string]*WorkoutPlan
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*s = WeeklySchedule{}
	for key, plan := range days {
		day, err := strconv.Atoi(key)
		if err != nil || !ValidDayOfWeek(day) {
			continue
		}
		s[day] = plan
	}
	return nil
}

// DayPlanUpdate is the field update set for creating or updating a day plan.
// DayOfWeek identifies the plan, DayName is only used when creating one.
type DayPlanUpdate struct {
	DayOfWeek int                      `json:"dayOfWeek"`
	DayName   string                   `json:"dayName"`
	DayPlan   pkg.Optional[string]     `json:"dayPlan"`
	Exercises pkg.Optional[[]Exercise] `json:"exercises"`
}

// NewPlanMeta carries what a freshly created plan needs besides the update itself.
type NewPlanMeta struct {
	PlanID    string
	MemberID  string
	GymID     string
	CreatedBy string
	Now       time.Time
}
