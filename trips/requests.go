package trips

import (
	"strings"

	"travelhub/models"
	"travelhub/utils"
)

type CreateTripRequest struct {
	Name              string               `json:"name" validate:"required"`
	StartLocation     string               `json:"startLocation" validate:"required"`
	Destination       string               `json:"destination" validate:"required"`
	Stops             []models.Stop        `json:"stops" validate:"max=5"`
	TravelMode        string               `json:"travelMode" validate:"omitempty,oneof=car flight"`
	EstimatedTime     string               `json:"estimatedTime"`
	EstimatedDistance string               `json:"estimatedDistance"`
	MapLocations      []models.MapLocation `json:"mapLocations"`
}

// UpdateTripRequest is a partial update; nil pointers mean the field
// keeps its stored value.
type UpdateTripRequest struct {
	Name              *string               `json:"name" validate:"omitempty,min=1"`
	StartLocation     *string               `json:"startLocation" validate:"omitempty,min=1"`
	Destination       *string               `json:"destination" validate:"omitempty,min=1"`
	Stops             *[]models.Stop        `json:"stops" validate:"omitempty,max=5"`
	TravelMode        *string               `json:"travelMode" validate:"omitempty,oneof=car flight"`
	EstimatedTime     *string               `json:"estimatedTime"`
	EstimatedDistance *string               `json:"estimatedDistance"`
	IsPlanned         *bool                 `json:"isPlanned"`
	MapLocations      *[]models.MapLocation `json:"mapLocations" validate:"omitempty"`
	Status            *string               `json:"status" validate:"omitempty,oneof=draft planned completed cancelled"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft planned completed cancelled"`
}

func (req *CreateTripRequest) trim() {
	req.Name = strings.TrimSpace(req.Name)
	req.StartLocation = strings.TrimSpace(req.StartLocation)
	req.Destination = strings.TrimSpace(req.Destination)
	for i := range req.Stops {
		req.Stops[i].Name = strings.TrimSpace(req.Stops[i].Name)
	}
}

func (req *CreateTripRequest) validate() error {
	req.trim()
	return utils.ValidateStruct(req)
}

func (req *UpdateTripRequest) validate() error {
	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartLocation != nil {
		*req.StartLocation = strings.TrimSpace(*req.StartLocation)
	}
	if req.Destination != nil {
		*req.Destination = strings.TrimSpace(*req.Destination)
	}
	return utils.ValidateStruct(req)
}
