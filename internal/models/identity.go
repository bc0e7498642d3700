package models

// IdentityKind indicates whether a contributor has linked their Discord account
type IdentityKind string

const (
	// IdentityKindLinked indicates the handle is linked to a Discord member
	IdentityKindLinked IdentityKind = "linked"

	// IdentityKindUnlinked indicates only the raw TikTok handle is known
	IdentityKindUnlinked IdentityKind = "unlinked"
)

// Identity is the key a contributor's counters are accumulated under.
// Unlinked identities keep accumulating under the raw handle so the totals
// survive a later /tokconnect link (see the aggregator's merge operation).
type Identity struct {
	// Kind indicates whether this identity is linked to a Discord member
	Kind IdentityKind

	// MemberID is the Discord user ID, set only when Kind is linked
	MemberID string

	// Handle is the TikTok handle the identity was resolved from
	Handle string
}

// LinkedIdentity builds an identity for a handle linked to a Discord member
func LinkedIdentity(memberID, handle string) Identity {
	return Identity{
		Kind:     IdentityKindLinked,
		MemberID: memberID,
		Handle:   handle,
	}
}

// UnlinkedIdentity builds a fallback identity keyed by the raw handle
func UnlinkedIdentity(handle string) Identity {
	return Identity{
		Kind:   IdentityKindUnlinked,
		Handle: handle,
	}
}

// Key returns the counter map key for this identity. Linked identities share
// one key regardless of which handle produced the event.
func (i Identity) Key() string {
	if i.Kind == IdentityKindLinked {
		return "member:" + i.MemberID
	}
	return "handle:" + i.Handle
}

// DisplayName returns the name to show on a leaderboard when no richer
// resolution is available
func (i Identity) DisplayName() string {
	if i.Kind == IdentityKindLinked {
		return "<@" + i.MemberID + ">"
	}
	return "@" + i.Handle
}
