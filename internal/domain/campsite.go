package domain

import "time"

// CampsiteStatus is the research state of a campsite candidate.
type CampsiteStatus string

const (
	CampsiteStatusUnsearched CampsiteStatus = "unsearched"
	CampsiteStatusSearching  CampsiteStatus = "searching"
	CampsiteStatusBooked     CampsiteStatus = "booked"
	CampsiteStatusRejected   CampsiteStatus = "rejected"
)

// CampsiteStatuses lists every valid campsite status.
var CampsiteStatuses = []CampsiteStatus{
	CampsiteStatusUnsearched,
	CampsiteStatusSearching,
	CampsiteStatusBooked,
	CampsiteStatusRejected,
}

// Valid reports whether s is one of the known campsite statuses.
func (s CampsiteStatus) Valid() bool {
	for _, known := range CampsiteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// CampsiteStatusOrDefault coerces an arbitrary string to a valid
// CampsiteStatus, falling back to CampsiteStatusUnsearched for anything
// unknown.
func CampsiteStatusOrDefault(s string) CampsiteStatus {
	if status := CampsiteStatus(s); status.Valid() {
		return status
	}
	return CampsiteStatusUnsearched
}

// Campsite is a prospective lodging option under consideration for a trip.
// Owned exclusively by its Trip. Within a trip, at most one campsite may have
// status booked at any time; EnforceSingleBooked maintains that invariant.
type Campsite struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	Status    CampsiteStatus `json:"status"`
	Upvotes   int            `json:"upvotes"`
	Downvotes int            `json:"downvotes"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
}

// EnforceSingleBooked returns a new slice in which the campsite with targetID
// is booked and every other previously-booked campsite is demoted to
// searching. All other campsites and fields are unchanged.
//
// When targetID is not present in the slice, the input is returned as-is and
// existing booked entries are left untouched; callers must locate the target
// before invoking this.
func EnforceSingleBooked(campsites []Campsite, targetID string) []Campsite {
	found := false
	for _, site := range campsites {
		if site.ID == targetID {
			found = true
			break
		}
	}
	if !found {
		return campsites
	}

	out := make([]Campsite, len(campsites))
	for i, site := range campsites {
		switch {
		case site.ID == targetID:
			site.Status = CampsiteStatusBooked
		case site.Status == CampsiteStatusBooked:
			site.Status = CampsiteStatusSearching
		}
		out[i] = site
	}
	return out
}
