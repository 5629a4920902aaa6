package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
)

// Event represents an auth event emitted by services. Events carry account
// ids only; credentials and tokens never ride along.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	TokenExpiresAt time.Time `json:"token_expires_at"`
}
