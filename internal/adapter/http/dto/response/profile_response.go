package response

import (
	"time"

	"github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"
)

type ProfileResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	FullName     string                `json:"full_name"`
	Organization string                `json:"organization"`
	Role         string                `json:"role"`
	Active       bool                  `json:"active"`
	Capabilities entities.Capabilities `json:"capabilities"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

func FromProfile(p entities.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           p.ID,
		Email:        p.Email,
		FullName:     p.FullName,
		Organization: p.Organization,
		Role:         string(p.Role),
		Active:       p.Active,
		Capabilities: entities.ResolveCapabilities(&p),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromProfiles(profiles []entities.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, FromProfile(p))
	}
	return out
}
