package entities

import "time"

// Role classifies what a profile is allowed to do across both route families.
//
//	user   — club member / observatory visitor
//	editor — observatory staff (surveys, data sources)
//	admin  — full control, including user management

type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Profile is the per-account row backing the permission layer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash and never leaves the service.

type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Organization string    `json:"organization"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Capabilities is the fixed set of booleans the UI layers key off.
type Capabilities struct {
	CanViewData      bool `json:"can_view_data"`
	CanExport        bool `json:"can_export"`
	CanUploadSources bool `json:"can_upload_sources"`
	CanManageUsers   bool `json:"can_manage_users"`
	IsAdmin          bool `json:"is_admin"`
	IsEditor         bool `json:"is_editor"`
	IsUser           bool `json:"is_user"`
}

// ResolveCapabilities derives capabilities from a profile. It is a pure
// function: no profile (nil) yields the least-privileged set, admins get
// every capability regardless of the active flag, and deactivated non-admin
// accounts lose all data capabilities while keeping their role flag.
func ResolveCapabilities(p *Profile) Capabilities {
	if p == nil {
		return Capabilities{}
	}

	caps := Capabilities{
		IsAdmin:  p.Role == RoleAdmin,
		IsEditor: p.Role == RoleEditor,
		IsUser:   p.Role == RoleUser,
	}

	if caps.IsAdmin {
		caps.CanViewData = true
		caps.CanExport = true
		caps.CanUploadSources = true
		caps.CanManageUsers = true
		return caps
	}

	if !p.Active {
		return caps
	}

	switch p.Role {
	case RoleEditor:
		caps.CanViewData = true
		caps.CanExport = true
		caps.CanUploadSources = true
	case RoleUser:
		caps.CanViewData = true
	}
	return caps
}
