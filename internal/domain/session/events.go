package session

import "time"

const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventUserLoggedOut  = "user.logged_out"
)

// UserRegistered is emitted when a new user is registered
type UserRegistered struct {
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// UserLoggedIn is emitted when a user successfully logs in
type UserLoggedIn struct {
	UserID   int64     `json:"user_id"`
	Email    string    `json:"email"`
	LoggedAt time.Time `json:"logged_at"`
}

// UserLoggedOut is emitted when the current user logs out
type UserLoggedOut struct {
	UserID   int64     `json:"user_id"`
	LoggedAt time.Time `json:"logged_at"`
}
