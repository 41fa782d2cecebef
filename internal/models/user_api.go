package models

import "time"

// Response statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// CreateUserRequest represents the JSON body for user creation.
// Absent keys decode to nil.
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// example: cnych
	Username *string `json:"username"`

	// Email
	// required: true
	// example: 123@qq.com
	Email *string `json:"email"`
}

// Valid reports whether both fields are present and non-empty.
func (r *CreateUserRequest) Valid() bool {
	return r != nil &&
		r.Username != nil && *r.Username != "" &&
		r.Email != nil && *r.Email != ""
}

// MessageResponse is the envelope for responses carrying a message.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: success
	Status string `json:"status"`
	// example: pong!
	Message string `json:"message"`
}

// UserDetails is the single user view returned by GET /users/{id}.
type UserDetails struct {
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the envelope for GET /users/{id}.
// swagger:model UserResponse
type UserResponse struct {
	Status string      `json:"status"`
	Data   UserDetails `json:"data"`
}

// UserSummary is one entry of the user list.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserList wraps the listed users.
type UserList struct {
	Users []UserSummary `json:"users"`
}

// UserListResponse is the envelope for GET /users.
// swagger:model UserListResponse
type UserListResponse struct {
	Status string   `json:"status"`
	Data   UserList `json:"data"`
}

// UserForm holds the fields posted by the index page form.
type UserForm struct {
	Username string `schema:"username"`
	Email    string `schema:"email"`
}
