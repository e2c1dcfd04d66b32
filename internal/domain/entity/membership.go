// Package entity contains the core business objects of the project.
package entity

// MembershipSet identifies one of the per-user item reference sets.
type MembershipSet string

const (
	// SetLiked is the set of items the user has liked. Toggling it adjusts
	// the item's like counter.
	SetLiked MembershipSet = "liked"
	// SetSaved is the set of items the user has saved for later. It has no
	// associated counter.
	SetSaved MembershipSet = "saved"
)

// String returns the string representation of the MembershipSet.
func (s MembershipSet) String() string {
	return string(s)
}

// IsValid checks if the MembershipSet is a valid value.
func (s MembershipSet) IsValid() bool {
	switch s {
	case SetLiked, SetSaved:
		return true
	default:
		return false
	}
}

// Counted reports whether toggling this set must also adjust the item's
// counter ledger.
func (s MembershipSet) Counted() bool {
	return s == SetLiked
}
