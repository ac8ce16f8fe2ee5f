package models

import "time"

// User represents an account entity used for authentication and authorization.
// Accounts are bootstrapped anonymously: the client generates no credentials
// of its own, the server assigns an opaque UserID and guards the account with
// a device secret that only the creating client holds.
type User struct {
	// UserID is the unique identifier of the user. It doubles as the owner
	// segment of every document path under "users/{userID}/**".
	UserID string `json:"userId"`

	// DeviceSecret is the client-held secret proving ownership of an
	// anonymous account when resuming a session. Only ever populated on
	// requests; never returned by the server.
	DeviceSecret string `json:"deviceSecret,omitempty"`

	// DeviceSecretHash is the bcrypt hash of DeviceSecret as stored
	// server-side. Never exposed via JSON.
	DeviceSecretHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
