// Package club holds the club, tag, event, and membership records plus the
// service operating on them.
package club

import "time"

// Club is a school club.
type Club struct {
	ID          string   `json:"id"`
	SchoolID    string   `json:"school_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	OwnerID     string   `json:"owner_id"`
}

// Event is a scheduled club activity.
type Event struct {
	ID       string    `json:"id"`
	ClubID   string    `json:"club_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	Location string    `json:"location,omitempty"`
}

// MembershipStatus tracks the join workflow.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
)

// Membership links a user to a club.
type Membership struct {
	ClubID string           `json:"club_id"`
	UserID string           `json:"user_id"`
	Status MembershipStatus `json:"status"`
}
