package models

// UserEventCreated is the type of the event published after a user is inserted.
const UserEventCreated = "user.created"

// UserEvent is the message published to Kafka for user lifecycle changes.
type UserEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}
