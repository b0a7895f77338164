package runtime

import (
	"sync"

	"peerchat/domain"
)

// RoomManager owns the private and group room collections. Callers
// never see the raw maps; every mutation is one atomic operation under
// the manager's lock, and compound transitions additionally run on the
// dispatch goroutine only.
type RoomManager struct {
	mu      sync.Mutex
	private []domain.PrivateRoom
	groups  map[domain.RoomID]*domain.GroupRoom
	nextID  domain.RoomID
}

func NewRoomManager() *RoomManager {
	return &RoomManager{
		groups: make(map[domain.RoomID]*domain.GroupRoom),
		nextID: 1,
	}
}

// IsBusy reports membership in any live room, private or group. Busy is
// a global property: a client negotiating a private chat can never also
// sit in a group room.
func (m *RoomManager) IsBusy(handle domain.Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isBusyLocked(handle)
}

func (m *RoomManager) isBusyLocked(handle domain.Handle) bool {
	for _, r := range m.private {
		if r.Has(handle) {
			return true
		}
	}
	for _, g := range m.groups {
		if g.Has(handle) {
			return true
		}
	}
	return false
}

// OpenPrivate allocates the two-party room once both sides agreed.
func (m *RoomManager) OpenPrivate(a, b domain.Handle) domain.PrivateRoom {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := domain.PrivateRoom{A: a, B: b}
	m.private = append(m.private, room)
	return room
}

// ClosePrivateFor destroys the private room containing handle, if any.
// Removing one side always drops the whole room: both participants
// leave in the same operation, never one at a time.
func (m *RoomManager) ClosePrivateFor(handle domain.Handle) (domain.PrivateRoom, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.private {
		if r.Has(handle) {
			m.private = append(m.private[:i], m.private[i+1:]...)
			return r, true
		}
	}
	return domain.PrivateRoom{}, false
}

// CreateGroup allocates a group room with the admin as first member.
// The room exists before any invitee accepts.
func (m *RoomManager) CreateGroup(admin domain.Handle) *domain.GroupRoom {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := domain.NewGroupRoom(m.nextID, admin)
	m.groups[room.ID] = room
	m.nextID++
	return room
}

func (m *RoomManager) Group(id domain.RoomID) (*domain.GroupRoom, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	return g, ok
}

func (m *RoomManager) GroupOf(handle domain.Handle) (*domain.GroupRoom, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.groups {
		if g.Has(handle) {
			return g, true
		}
	}
	return nil, false
}

func (m *RoomManager) JoinGroup(id domain.RoomID, handle domain.Handle) (*domain.GroupRoom, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, false
	}
	g.Add(handle)
	return g, true
}

// LeaveGroup removes handle from whichever group contains it and
// returns the room id and the remaining members. The room is deleted
// the instant its member set would reach zero.
func (m *RoomManager) LeaveGroup(handle domain.Handle) (domain.RoomID, []domain.Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, g := range m.groups {
		if !g.Has(handle) {
			continue
		}
		if g.Remove(handle) == 0 {
			delete(m.groups, id)
		}
		remaining := make([]domain.Handle, len(g.Members))
		copy(remaining, g.Members)
		return id, remaining, true
	}
	return 0, nil, false
}

// Occupancy reports live group rooms and their member counts for the
// reporter.
func (m *RoomManager) Occupancy() map[domain.RoomID]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[domain.RoomID]int, len(m.groups))
	for id, g := range m.groups {
		out[id] = len(g.Members)
	}
	return out
}
