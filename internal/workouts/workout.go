package workouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymdesk/internal/auth"
	"github.com/2beens/gymdesk/pkg"
)

const unknownExerciseName = "Unknown Exercise"

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrDateRequired      = errors.New("date parameter is required")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrAssignmentInvalid = errors.New("date and exercise id are required")
	ErrNegativeLoad      = errors.New("sets, reps and weight must not be negative")
	ErrForeignLog        = fmt.Errorf("%w: only the member can update their workout log", auth.ErrForbidden)
)

// AssignedWorkout is a single exercise a gym owner scheduled for a member on a date.
type AssignedWorkout struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"memberId"`
	Date         string    `json:"date"`
	ExerciseID   string    `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Notes        string    `json:"notes"`
	AssignedBy   string    `json:"assignedBy"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AssignParams struct {
	Date         string  `json:"date"`
	ExerciseID   string  `json:"exerciseId"`
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
	Notes        string  `json:"notes"`
}

// WorkoutLog records which exercises a member completed on a date.
// Completion is keyed by exercise id.
type WorkoutLog struct {
	ID                 string    `json:"id"`
	MemberID           string    `json:"memberId"`
	Date               string    `json:"date"`
	CompletedExercises []string  `json:"completedExercises"`
	Notes              string    `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type LogUpdate struct {
	CompletedExercises []string `json:"completedExercises"`
	Notes              string   `json:"notes"`
}

func parseDay(value string) (time.Time, error) {
	day, err := pkg.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, value)
	}
	if day == nil {
		return time.Time{}, ErrDateRequired
	}
	return *day, nil
}

// uniqueIDs drops blanks and repeats, keeping first occurrences in order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
