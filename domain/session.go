package domain

// SessionKind enumerates the per-client negotiation states.
type SessionKind int

const (
	Idle SessionKind = iota
	// Pending is declared for completeness of the lifecycle; the
	// negotiation table keeps requesters Idle until agreement, so no
	// transition currently enters it.
	Pending
	InPrivate
	InGroup
)

func (k SessionKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case InPrivate:
		return "private"
	case InGroup:
		return "group"
	default:
		return "unknown"
	}
}

// SessionState is the negotiation state of one client. Group holds the
// room identifier only while Kind is InGroup.
type SessionState struct {
	Kind  SessionKind
	Group RoomID
}

func IdleState() SessionState {
	return SessionState{Kind: Idle}
}

func PrivateState() SessionState {
	return SessionState{Kind: InPrivate}
}

func GroupState(id RoomID) SessionState {
	return SessionState{Kind: InGroup, Group: id}
}
