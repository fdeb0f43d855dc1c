package response

import (
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

type RegistrationResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Organization string    `json:"organization,omitempty"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromRegistration(r entities.RegistrationRequest) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		Email:        r.Email,
		FullName:     r.FullName,
		Organization: r.Organization,
		Message:      r.Message,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func FromRegistrations(requests []entities.RegistrationRequest) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRegistration(r))
	}
	return out
}
