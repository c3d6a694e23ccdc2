// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully stored.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	PlaceID    string `json:"place_id"`
	PlaceTitle string `json:"place_title"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Price      int    `json:"price"`
	CreatedAt  string `json:"created_at"`
}
