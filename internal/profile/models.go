// Package profile defines the application-level user record and the
// document-store interface it is read from.
package profile

// Role is the access level assigned to a user by an admin.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	// RoleUnset marks a partially provisioned profile with no role assigned
	// yet. The route guard sends these users to the welcome page.
	RoleUnset Role = ""
)

// Known reports whether the role is one of the recognized access levels.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// Profile is the application user record stored in the document store. It is
// written by signup and admin flows; the session core only reads it.
type Profile struct {
	ID          string `json:"id"`
	Role        Role   `json:"role,omitempty"`
	SchoolID    string `json:"school_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// Clone returns a copy so cached profiles can be handed out without aliasing
// the store's state.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
