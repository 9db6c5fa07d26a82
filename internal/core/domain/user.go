package domain

import "time"

// User represents a registered user of the application in the domain.
type User struct {
	UserID        string    `json:"userID"` // Primary Key (UUID)
	Email         string    `json:"email"`  // Unique
	PasswordHash  string    `json:"-"`      // Never serialized
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// GetUserID implements the dto user accessor contract.
func (u *User) GetUserID() string { return u.UserID }

// GetEmail implements the dto user accessor contract.
func (u *User) GetEmail() string { return u.Email }

// GetName implements the dto user accessor contract.
func (u *User) GetName() string { return u.Name }
