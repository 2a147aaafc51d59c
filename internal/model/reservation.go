package model

// Reservation records a booking of a room for a date range. RoomID and
// UserID reference rooms and users by id without foreign-key constraints;
// UserID is 0 for guest bookings. StartDate and EndDate are kept as the
// strings the client sent, Days is the client-computed night count.
type Reservation struct {
	ID         uint64 `json:"id"`
	RoomID     uint64 `json:"roomId"`
	UserID     uint64 `json:"userId"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Days       int    `json:"days"`
}
