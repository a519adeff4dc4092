package workouts

import (
	"time"

	"github.com/2beens/treinos/internal/exercises"
)

type Workout struct {
	ID            int        `json:"id"`
	StudentID     int        `json:"student_id"`
	Name          string     `json:"name"`
	LastExecution *time.Time `json:"last_execution"`
}

// WorkoutParams is the body of a create or update request.
// LastExecution is kept as sent and parsed by postgres, so any timestamptz
// input it accepts ("2024-01-15", "2024-01-15 08:00:00", RFC 3339) is valid.
type WorkoutParams struct {
	StudentID     int     `json:"student_id"`
	Name          string  `json:"name"`
	LastExecution *string `json:"last_execution"`
}

// WorkoutWithExercises pairs a workout with exactly its own exercises.
type WorkoutWithExercises struct {
	Workout   Workout              `json:"workout"`
	Exercises []exercises.Exercise `json:"exercises"`
}
