package request

import (
	"strings"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

// RegistrationSubmitRequest is the public club membership application form.
type RegistrationSubmitRequest struct {
	Email        string `json:"email" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

func (r RegistrationSubmitRequest) ToEntity() entities.RegistrationRequest {
	return entities.RegistrationRequest{
		Email:        strings.TrimSpace(r.Email),
		FullName:     strings.TrimSpace(r.FullName),
		Organization: strings.TrimSpace(r.Organization),
		Message:      strings.TrimSpace(r.Message),
	}
}

// RegistrationApproveRequest optionally sets the new member's first password;
// an empty value means a generated one.
type RegistrationApproveRequest struct {
	InitialPassword string `json:"initial_password"`
}
