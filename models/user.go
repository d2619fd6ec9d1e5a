package models

import "time"

// User represents a registered account. It is created once by registration,
// read during authentication and never updated or deleted afterwards.
// PasswordHash must always hold a bcrypt digest, never a clear password.
type User struct {
	// UserID is the internal unique identifier assigned by the database.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier, at most 32 characters.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialized and never transmitted in clear form.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
