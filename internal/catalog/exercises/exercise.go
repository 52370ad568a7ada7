package exercises

import "github.com/fitstack/catalog/internal/catalog/rules"

type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Category string

const (
	CategoryStrength    Category = "STRENGTH"
	CategoryCardio      Category = "CARDIO"
	CategoryFlexibility Category = "FLEXIBILITY"
	CategoryBalance     Category = "BALANCE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryFlexibility, CategoryBalance:
		return true
	}
	return false
}

// MuscleGroupRef and EquipmentRef are the expanded relation shapes returned
// with an exercise, id + name only.
type MuscleGroupRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type EquipmentRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Exercise struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	MediaURL       string           `json:"mediaUrl,omitempty"`
	Recommendation string           `json:"recommendation,omitempty"`
	Level          Level            `json:"level"`
	Category       Category         `json:"category"`
	Score          *float64         `json:"score,omitempty"`
	TotalRatings   *int             `json:"totalRatings,omitempty"`
	MuscleGroups   []MuscleGroupRef `json:"muscleGroups"`
	Equipments     []EquipmentRef   `json:"equipments"`
}

type CreateExerciseRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	MediaURL       string   `json:"mediaUrl"`
	Recommendation string   `json:"recommendation"`
	Level          Level    `json:"level"`
	Category       Category `json:"category"`
	MuscleGroupIDs []int    `json:"muscleGroups"`
	EquipmentIDs   []int    `json:"equipments"`
}

// Relation id lists are pointers: nil leaves the current set untouched, an
// empty list clears it.
type UpdateExerciseRequest struct {
	Name           *string   `json:"name"`
	Description    *string   `json:"description"`
	MediaURL       *string   `json:"mediaUrl"`
	Recommendation *string   `json:"recommendation"`
	Level          *Level    `json:"level"`
	Category       *Category `json:"category"`
	MuscleGroupIDs *[]int    `json:"muscleGroups"`
	EquipmentIDs   *[]int    `json:"equipments"`
}

type ListResponse struct {
	Data []Exercise `json:"data"`
	Meta rules.Meta `json:"meta"`
}

type DeleteResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
