// Package guard gates screens behind the session state and a declared role
// requirement. The decision is a pure function over the published session
// state; performing the redirect or rendering is the transport layer's job.
package guard

import (
	"clubhub/internal/profile"
	"clubhub/internal/session"
)

// Paths the decision table resolves to.
const (
	SignInPath  = "/login"
	WelcomePath = "/welcome"
)

var dashboardByRole = map[profile.Role]string{
	profile.RoleAdmin:   "/admin/dashboard",
	profile.RoleTeacher: "/teacher/dashboard",
	profile.RoleStudent: "/student/dashboard",
}

// Kind tags a guard decision.
type Kind string

const (
	// Loading: nothing is known yet; render a loading indicator.
	Loading Kind = "loading"
	// Redirect: send the user to Decision.Path and render nothing.
	Redirect Kind = "redirect"
	// PendingApproval: the profile exists but has no school linkage yet.
	// Terminal; the pending-approval screen is shown regardless of the
	// required role.
	PendingApproval Kind = "pending_approval"
	// Authorized: render the protected children.
	Authorized Kind = "authorized"
)

// Decision is the guard's verdict for one evaluation.
type Decision struct {
	Kind Kind
	// Path is set only for Redirect decisions.
	Path string
}

// DashboardPath returns the dashboard for a user's actual role, or the
// welcome page when the role is absent or unrecognized.
func DashboardPath(role profile.Role) string {
	if path, ok := dashboardByRole[role]; ok {
		return path
	}
	return WelcomePath
}

// Evaluate runs the decision table against a session state. requiredRole
// RoleUnset means any signed-in, school-linked user is allowed.
//
// A profile that exists without a role deliberately lands on the welcome
// page, distinct from a missing profile; both are kept apart from the
// pending-approval case, which only applies to an existing profile with no
// school.
func Evaluate(st session.State, requiredRole profile.Role) Decision {
	if st.Loading {
		return Decision{Kind: Loading}
	}
	if st.Identity == nil {
		return Decision{Kind: Redirect, Path: SignInPath}
	}
	if st.Profile != nil && st.Profile.SchoolID == "" {
		return Decision{Kind: PendingApproval}
	}
	if requiredRole != profile.RoleUnset {
		actual := profile.RoleUnset
		if st.Profile != nil {
			actual = st.Profile.Role
		}
		if actual != requiredRole {
			// Send the user to their own dashboard, never an error page.
			return Decision{Kind: Redirect, Path: DashboardPath(actual)}
		}
	}
	return Decision{Kind: Authorized}
}
