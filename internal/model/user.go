// Package model defines domain entities for the application.
package model

import "time"

// User is a registered player identity.
// Email is unique and matched exactly; no case folding is applied.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
