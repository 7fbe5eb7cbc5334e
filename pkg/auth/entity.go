package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a job seeker account. FullName and
// Phone are optional and feed the application-form autofill.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	CreatedAt    time.Time
}
