package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"peerchat/domain"
	errs "peerchat/errors"
	"peerchat/mocks"
)

func runDispatch(t *testing.T, negotiator *mocks.MockINegotiator,
	commands chan domain.Command) func() {
	ctx, cancel := context.WithCancel(context.Background())
	worker := NewDispatchWorker(slog.Default(), negotiator, commands)

	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("dispatch worker did not stop")
		}
	}
}

func TestDispatchWorker_RoutesCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	negotiator := mocks.NewMockINegotiator(ctrl)
	commands := make(chan domain.Command, 8)

	handle := domain.NewHandle()
	now := time.Now()
	applied := make(chan string, 8)

	register := domain.RegisterCommand{Handle: handle, Username: "alice", Host: "127.0.0.1", ListenPort: 9001}
	frame := domain.FrameCommand{From: handle, Msg: domain.Search{Target: "bob", Requester: "alice"}}

	negotiator.EXPECT().Register(register).DoAndReturn(func(domain.RegisterCommand) error {
		applied <- "register"
		return nil
	})
	negotiator.EXPECT().HandleFrame(handle, frame.Msg).Do(func(domain.Handle, domain.ControlMessage) {
		applied <- "frame"
	})
	negotiator.EXPECT().Heartbeat("alice").Do(func(string) {
		applied <- "heartbeat"
	})
	negotiator.EXPECT().Decay(now).Do(func(time.Time) {
		applied <- "decay"
	})
	negotiator.EXPECT().Disconnect(handle).Do(func(domain.Handle) {
		applied <- "disconnect"
	})

	stop := runDispatch(t, negotiator, commands)
	defer stop()

	// When one command of every kind flows through the channel
	commands <- register
	commands <- frame
	commands <- domain.HeartbeatCommand{Username: "alice"}
	commands <- domain.DecayCommand{Now: now}
	commands <- domain.DisconnectCommand{From: handle}

	// Then each one reached its negotiator operation, in order
	req := require.New(t)
	for _, expected := range []string{"register", "frame", "heartbeat", "decay", "disconnect"} {
		select {
		case got := <-applied:
			req.Equal(expected, got)
		case <-time.After(time.Second):
			t.Fatalf("command %q was never applied", expected)
		}
	}
}

func TestDispatchWorker_RefusedRegistrationDisconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	negotiator := mocks.NewMockINegotiator(ctrl)
	commands := make(chan domain.Command, 1)

	handle := domain.NewHandle()
	disconnected := make(chan struct{})

	// Given the negotiator refuses the registration
	negotiator.EXPECT().
		Register(gomock.Any()).
		Return(errs.ErrProtocol)
	negotiator.EXPECT().
		Disconnect(handle).
		Do(func(domain.Handle) { close(disconnected) })

	stop := runDispatch(t, negotiator, commands)
	defer stop()

	// When the register command arrives
	commands <- domain.RegisterCommand{Handle: handle, Username: "", Host: "127.0.0.1", ListenPort: 9001}

	// Then the connection is torn down
	select {
	case <-disconnected:
	case <-time.After(time.Second):
		t.Fatal("refused registration did not disconnect")
	}
}
