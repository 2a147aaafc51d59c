package model

// User represents an application user record as stored in the `users`
// table. Password carries the bcrypt hash, never plaintext. Token holds the
// most recently issued auth token; it is overwritten on each login and is
// nil until the first login persists one. The profile fields are empty
// strings until the user fills them in via the profile update endpoint.
//
// The password hash is serialized in API responses because list and login
// endpoints return full rows; this mirrors the contract the frontend was
// built against.
type User struct {
	ID         uint64  `json:"id"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	Token      *string `json:"token"`
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
}

// Roles a user row may carry. New accounts always start as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
