package domain

type RoomID int

// PrivateRoom is an ephemeral two-party session. Its membership is
// exactly two handles for its entire lifetime: it is created when both
// sides agree and destroyed when either side exits, in one operation.
type PrivateRoom struct {
	A Handle
	B Handle
}

func (r PrivateRoom) Has(h Handle) bool {
	return r.A == h || r.B == h
}

// Other returns the counterpart of h inside the room.
func (r PrivateRoom) Other(h Handle) Handle {
	if r.A == h {
		return r.B
	}
	return r.A
}

func (r PrivateRoom) Members() []Handle {
	return []Handle{r.A, r.B}
}

// GroupRoom is a multi-party session with a designated admin. The admin
// is always the first member. A live room never has zero members: the
// manager deletes it the instant the set would empty.
type GroupRoom struct {
	ID      RoomID
	Admin   Handle
	Members []Handle
}

func NewGroupRoom(id RoomID, admin Handle) *GroupRoom {
	return &GroupRoom{ID: id, Admin: admin, Members: []Handle{admin}}
}

func (r *GroupRoom) Has(h Handle) bool {
	for _, m := range r.Members {
		if m == h {
			return true
		}
	}
	return false
}

func (r *GroupRoom) Add(h Handle) {
	if r.Has(h) {
		return
	}
	r.Members = append(r.Members, h)
}

// Remove drops h from the member set and reports how many members are
// left. The caller deletes the room when it reaches zero.
func (r *GroupRoom) Remove(h Handle) int {
	for i, m := range r.Members {
		if m == h {
			r.Members = append(r.Members[:i], r.Members[i+1:]...)
			break
		}
	}
	return len(r.Members)
}
