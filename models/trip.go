package models

import "time"

const MaxTripStops = 5

var TripStatuses = map[string]bool{
	"draft":     true,
	"planned":   true,
	"completed": true,
	"cancelled": true,
}

type Stop struct {
	Name string `json:"name" bson:"name"`
}

// MapLocation is one pin on the trip map; Role is start, stop or end.
type MapLocation struct {
	Name        string     `json:"name" bson:"name"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
	Role        string     `json:"role" bson:"role"`
}

type Trip struct {
	TripID            string        `json:"tripid" bson:"tripid"`
	UserID            string        `json:"userid" bson:"userid"`
	Name              string        `json:"name" bson:"name"`
	StartLocation     string        `json:"startLocation" bson:"start_location"`
	Destination       string        `json:"destination" bson:"destination"`
	Stops             []Stop        `json:"stops" bson:"stops"`
	TravelMode        string        `json:"travelMode" bson:"travel_mode"`
	EstimatedTime     string        `json:"estimatedTime,omitempty" bson:"estimated_time,omitempty"`
	EstimatedDistance string        `json:"estimatedDistance,omitempty" bson:"estimated_distance,omitempty"`
	IsPlanned         bool          `json:"isPlanned" bson:"is_planned"`
	MapLocations      []MapLocation `json:"mapLocations" bson:"map_locations"`
	Status            string        `json:"status" bson:"status"`
	CreatedAt         time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" bson:"updated_at"`
}
