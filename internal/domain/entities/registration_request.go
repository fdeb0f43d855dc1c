package entities

import "time"

// RegistrationStatus is the lifecycle of a club membership application.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// RegistrationRequest is a prospective member's application (solicitud).
// Approval creates the member's profile and flips this row in a single
// storage transaction, so a half-created account can never be left behind.
//
// Storage model (DynamoDB):
//   - PK: id

type RegistrationRequest struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	FullName     string             `json:"full_name"`
	Organization string             `json:"organization"`
	Message      string             `json:"message,omitempty"`
	Status       RegistrationStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
