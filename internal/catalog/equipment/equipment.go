package equipment

import "github.com/fitstack/catalog/internal/catalog/rules"

type Category string

const (
	CategoryMachine    Category = "MACHINE"
	CategoryFreeWeight Category = "FREE_WEIGHT"
	CategoryCardio     Category = "CARDIO"
	CategoryAccessory  Category = "ACCESSORY"
	CategoryBodyweight Category = "BODYWEIGHT"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMachine, CategoryFreeWeight, CategoryCardio, CategoryAccessory, CategoryBodyweight:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable     Status = "AVAILABLE"
	StatusInMaintenance Status = "IN_MAINTENANCE"
	StatusOutOfOrder    Status = "OUT_OF_ORDER"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusInMaintenance, StatusOutOfOrder:
		return true
	}
	return false
}

// Equipment is a piece of gym equipment exercises can require. Score and
// TotalRatings stay nil until the first rating lands.
type Equipment struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MediaURL     string   `json:"mediaUrl,omitempty"`
	Category     Category `json:"category"`
	Status       Status   `json:"status"`
	Score        *float64 `json:"score,omitempty"`
	TotalRatings *int     `json:"totalRatings,omitempty"`
}

type CreateEquipmentRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MediaURL    string   `json:"mediaUrl"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
}

type UpdateEquipmentRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	MediaURL    *string   `json:"mediaUrl"`
	Category    *Category `json:"category"`
	Status      *Status   `json:"status"`
}

type ListResponse struct {
	Data []Equipment `json:"data"`
	Meta rules.Meta  `json:"meta"`
}

type DeleteResponse struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}
