package events

import "time"

const TypePlanChanged = "workout_plan.changed"

type PlanOp string

const (
	PlanOpCreated         PlanOp = "created"
	PlanOpUpdated         PlanOp = "updated"
	PlanOpExerciseAdded   PlanOp = "exercise_added"
	PlanOpExerciseRemoved PlanOp = "exercise_removed"
)

// PlanChanged is emitted after a workout plan write has been committed.
type PlanChanged struct {
	Type          string    `json:"type"`
	Op            PlanOp    `json:"op"`
	PlanID        string    `json:"planId"`
	MemberID      string    `json:"memberId"`
	GymID         string    `json:"gymId"`
	DayOfWeek     int       `json:"dayOfWeek"`
	Version       int64     `json:"version"`
	ExerciseCount int       `json:"exerciseCount"`
	OccurredAt    time.Time `json:"occurredAt"`
}
