package workouts

import (
	"github.com/fitstack/catalog/internal/catalog/exercises"
	"github.com/fitstack/catalog/internal/catalog/rules"
)

// ExerciseInWorkout is a row owned by its workout: one exercise slot with its
// prescription and position. Rows are soft-deleted together with the workout.
type ExerciseInWorkout struct {
	ID         int      `json:"id"`
	ExerciseID int      `json:"exerciseId"`
	WorkoutID  int      `json:"workoutId"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight,omitempty"`
	RestTime   int      `json:"restTime"`
	Order      int      `json:"order"`
}

type ExerciseInWorkoutInput struct {
	ExerciseID int      `json:"exerciseId"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Weight     *float64 `json:"weight"`
	RestTime   int      `json:"restTime"`
	Order      int      `json:"order"`
}

type Workout struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	Frequency    int                 `json:"frequency"`
	Duration     int                 `json:"duration"`
	Level        exercises.Level     `json:"level"`
	Category     exercises.Category  `json:"category"`
	TrainingType string              `json:"trainingType,omitempty"`
	Score        *float64            `json:"score,omitempty"`
	TotalRatings *int                `json:"totalRatings,omitempty"`
	Exercises    []ExerciseInWorkout `json:"exercises"`
}

type CreateWorkoutRequest struct {
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	Frequency    int                      `json:"frequency"`
	Duration     int                      `json:"duration"`
	Level        exercises.Level          `json:"level"`
	Category     exercises.Category       `json:"category"`
	TrainingType string                   `json:"trainingType"`
	Exercises    []ExerciseInWorkoutInput `json:"exercises"`
}

// Exercises is a pointer: nil leaves the current rows untouched, a list
// replaces them wholesale.
type UpdateWorkoutRequest struct {
	Name         *string                   `json:"name"`
	Description  *string                   `json:"description"`
	Frequency    *int                      `json:"frequency"`
	Duration     *int                      `json:"duration"`
	Level        *exercises.Level          `json:"level"`
	Category     *exercises.Category       `json:"category"`
	TrainingType *string                   `json:"trainingType"`
	Exercises    *[]ExerciseInWorkoutInput `json:"exercises"`
}

type ByIDsRequest struct {
	IDs []int `json:"ids"`
}

type ListResponse struct {
	Data []Workout  `json:"data"`
	Meta rules.Meta `json:"meta"`
}

type DeleteResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
