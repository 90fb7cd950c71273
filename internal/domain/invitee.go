package domain

import "time"

// InviteeStatus is an invitee's RSVP state.
type InviteeStatus string

const (
	InviteeStatusPending  InviteeStatus = "pending"
	InviteeStatusAccepted InviteeStatus = "accepted"
	InviteeStatusDeclined InviteeStatus = "declined"
)

// InviteeStatuses lists every valid invitee status.
var InviteeStatuses = []InviteeStatus{
	InviteeStatusPending,
	InviteeStatusAccepted,
	InviteeStatusDeclined,
}

// Valid reports whether s is one of the known invitee statuses.
func (s InviteeStatus) Valid() bool {
	for _, known := range InviteeStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// InviteeStatusOrDefault coerces an arbitrary string to a valid InviteeStatus,
// falling back to InviteeStatusPending for anything unknown.
func InviteeStatusOrDefault(s string) InviteeStatus {
	if status := InviteeStatus(s); status.Valid() {
		return status
	}
	return InviteeStatusPending
}

// Invitee is a person invited on a trip. Owned exclusively by its Trip.
type Invitee struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    InviteeStatus `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
}
