//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"peerchat/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Notifier is the write side of one control connection. Push sends the
// (sender identity, body) frame pair of a server push.
type Notifier interface {
	Push(identity, body string) error
	Close() error
}

// IRegistry maps opaque connection handles to client records and their
// notifiers. Duplicate usernames resolve to the most recently
// registered record.
type IRegistry interface {
	Attach(handle domain.Handle, sink Notifier)
	Register(client *domain.Client)
	Get(handle domain.Handle) (*domain.Client, bool)
	FindByUsername(name string) (domain.Handle, bool)
	FindByEndpoint(host string, port int) (domain.Handle, bool)
	Sink(handle domain.Handle) (Notifier, bool)
	Update(handle domain.Handle, mutate func(*domain.Client)) bool
	Remove(handle domain.Handle) (*domain.Client, bool)
	Snapshot() []domain.Client
}

// INegotiator applies decoded commands to the session state machine.
// Implementations are not safe for concurrent use: every method must be
// called from the single dispatching goroutine.
type INegotiator interface {
	Register(cmd domain.RegisterCommand) error
	HandleFrame(from domain.Handle, msg domain.ControlMessage)
	Heartbeat(username string)
	Decay(now time.Time)
	Disconnect(from domain.Handle)
}

// IRoomManager owns the private and group room collections. A client is
// busy when it is a member of any room of either kind.
type IRoomManager interface {
	IsBusy(handle domain.Handle) bool
	OpenPrivate(a, b domain.Handle) domain.PrivateRoom
	ClosePrivateFor(handle domain.Handle) (domain.PrivateRoom, bool)
	CreateGroup(admin domain.Handle) *domain.GroupRoom
	Group(id domain.RoomID) (*domain.GroupRoom, bool)
	GroupOf(handle domain.Handle) (*domain.GroupRoom, bool)
	JoinGroup(id domain.RoomID, handle domain.Handle) (*domain.GroupRoom, bool)
	LeaveGroup(handle domain.Handle) (domain.RoomID, []domain.Handle, bool)
	Occupancy() map[domain.RoomID]int
}
