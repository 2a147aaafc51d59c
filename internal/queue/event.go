// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation row has been
// inserted. It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type ReservationCreatedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	RoomID        uint64 `json:"room_id"`
	UserID        uint64 `json:"user_id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	City          string `json:"city"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Days          int    `json:"days"`
	CreatedAt     string `json:"created_at"`
}
