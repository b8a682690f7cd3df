package dto

import (
	"time"
)

// UserOutput is the public projection of a user. It deliberately has no
// password field.
type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
