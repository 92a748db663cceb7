package domain

import "time"

type User struct {
	ID            string
	Firstname     string
	Lastname      string
	Email         string
	PasswordHash  string
	Enabled       bool
	AccountLocked bool
	RoleID        string
	RoleName      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName is embedded into the JWT and used as the display name on
// activation emails.
func (u *User) FullName() string {
	return u.Firstname + " " + u.Lastname
}

type Role struct {
	ID   string
	Name string
}

// ActivationToken is a one-time numeric code proving control of the
// registered email address. A token is consumed by stamping ValidatedAt.
type ActivationToken struct {
	ID          string
	UserID      string
	Token       string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ValidatedAt *time.Time
}
