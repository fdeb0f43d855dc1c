package request

// RoleChangeRequest sets a profile's role (user, editor or admin).
type RoleChangeRequest struct {
	Role string `json:"role" binding:"required"`
}

// ActiveChangeRequest toggles a profile's active flag. A pointer keeps
// `{"active": false}` distinguishable from a missing field.
type ActiveChangeRequest struct {
	Active *bool `json:"active" binding:"required"`
}
