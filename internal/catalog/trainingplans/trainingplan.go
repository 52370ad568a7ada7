package trainingplans

import (
	"time"

	"github.com/fitstack/catalog/internal/catalog/exercises"
	"github.com/fitstack/catalog/internal/catalog/rules"
)

// WorkoutRef is the expanded workout relation returned with a plan.
type WorkoutRef struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TrainingPlan struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Level        exercises.Level `json:"level"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	Score        *float64        `json:"score,omitempty"`
	TotalRatings *int            `json:"totalRatings,omitempty"`
	Workouts     []WorkoutRef    `json:"workouts"`
}

type CreateTrainingPlanRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Level       exercises.Level `json:"level"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	WorkoutIDs  []int           `json:"workouts"`
}

// WorkoutIDs is a pointer: nil leaves the current set untouched, a list
// replaces it.
type UpdateTrainingPlanRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Level       *exercises.Level `json:"level"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	WorkoutIDs  *[]int           `json:"workouts"`
}

type ByIDsRequest struct {
	IDs []int `json:"ids"`
}

type ListResponse struct {
	Data []TrainingPlan `json:"data"`
	Meta rules.Meta     `json:"meta"`
}

type DeleteResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
