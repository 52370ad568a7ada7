package musclegroups

import "github.com/fitstack/catalog/internal/catalog/rules"

// MuscleGroup names a muscle group exercises can target. Timestamps and the
// soft-delete flag never leave the store layer.
type MuscleGroup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateMuscleGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateMuscleGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type ListResponse struct {
	Data []MuscleGroup `json:"data"`
	Meta rules.Meta    `json:"meta"`
}

type DeleteResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
