package response

import "github.com/VLP-TECH/real-state-enrique-sub000/internal/domain/entities"

type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

func FromAuth(p entities.Profile, token string) AuthResponse {
	return AuthResponse{Token: token, Profile: FromProfile(p)}
}
