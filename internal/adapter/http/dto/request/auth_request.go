package request

// SignUpRequest is the observatory self-service registration payload.
type SignUpRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"full_name"`
	Organization string `json:"organization"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
