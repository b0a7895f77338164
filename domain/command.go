package domain

import (
	"time"
)

// Command is one unit of work funneled into the dispatch loop. Every
// mutation of the registry and the room maps happens on the single
// goroutine draining the command channel, so one command always runs to
// completion before the next is observed.
type Command interface {
	isCommand()
}

// RegisterCommand completes the handshake of a freshly accepted
// connection.
type RegisterCommand struct {
	Handle     Handle
	Username   string
	Host       string
	ListenPort int
}

func (RegisterCommand) isCommand() {}

// FrameCommand carries one decoded control frame from a registered
// connection.
type FrameCommand struct {
	From Handle
	Msg  ControlMessage
}

func (FrameCommand) isCommand() {}

// HeartbeatCommand refills the liveness budget of the named client.
type HeartbeatCommand struct {
	Username string
}

func (HeartbeatCommand) isCommand() {}

// DecayCommand triggers one liveness pass at the given instant.
type DecayCommand struct {
	Now time.Time
}

func (DecayCommand) isCommand() {}

// DisconnectCommand reports a closed or failed control connection.
type DisconnectCommand struct {
	From Handle
}

func (DisconnectCommand) isCommand() {}
