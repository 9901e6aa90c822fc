package exercises

import (
	"errors"
	"time"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNameRequired     = errors.New("exercise name is required")
)

// GymExercise is an entry of a gym's exercise library.
type GymExercise struct {
	ExerciseID  string    `json:"exerciseId"`
	GymID       string    `json:"gymId"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	Description string    `json:"description"`
	Equipment   string    `json:"equipment"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewExerciseParams struct {
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Description string `json:"description"`
	Equipment   string `json:"equipment"`
}
