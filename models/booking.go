package models

import "time"

var BookingKinds = map[string]bool{
	"flight": true,
	"hotel":  true,
	"car":    true,
}

var BookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"cancelled": true,
}

type Booking struct {
	BookingID string    `json:"bookingid" bson:"bookingid"`
	UserID    string    `json:"userid" bson:"userid"`
	Kind      string    `json:"kind" bson:"kind"`
	Reference string    `json:"reference" bson:"reference"`
	From      string    `json:"from,omitempty" bson:"from,omitempty"`
	To        string    `json:"to,omitempty" bson:"to,omitempty"`
	Date      string    `json:"date" bson:"date"`
	Guests    int       `json:"guests,omitempty" bson:"guests,omitempty"`
	Price     float64   `json:"price,omitempty" bson:"price,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
