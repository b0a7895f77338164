package test

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"peerchat/client"
	"peerchat/domain"
	"peerchat/runtime"
	"peerchat/runtime/workers"
)

// startServer boots a full server on ephemeral loopback ports.
func startServer(t *testing.T, livenessLimit time.Duration) *runtime.Orchestrator {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(log, supervisor,
		runtime.NewRegistry(), runtime.NewRoomManager(), runtime.Options{
			Host:             "127.0.0.1",
			TCPPort:          0,
			UDPPort:          0,
			BufferSize:       64,
			LivenessLimit:    livenessLimit,
			LivenessInterval: 200 * time.Millisecond,
			CharReplacement:  '*',
		})

	ctx, cancel := context.WithCancel(context.Background())
	req.NoError(orchestrator.Start(ctx))
	t.Cleanup(func() {
		cancel()
		orchestrator.Stop()
	})
	return orchestrator
}

type user struct {
	session *client.Session
	done    chan error
}

// connect logs one user in and waits for the server's welcome.
func connect(t *testing.T, orchestrator *runtime.Orchestrator, name string,
	heartbeat time.Duration) *user {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	session := client.NewSession(log, client.Config{
		Username:          name,
		ServerAddr:        orchestrator.ControlAddr().String(),
		HeartbeatAddr:     orchestrator.HeartbeatAddr().String(),
		ListenPort:        0,
		HeartbeatInterval: heartbeat,
	})

	ctx, cancel := context.WithCancel(context.Background())
	req.NoError(session.Dial(ctx))

	u := &user{session: session, done: make(chan error, 1)}
	go func() { u.done <- session.Run(ctx) }()
	t.Cleanup(cancel)

	waitEvent(t, u, "welcome "+name)
	return u
}

// waitEvent drains display events until one contains the fragment.
func waitEvent(t *testing.T, u *user, fragment string) client.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-u.session.Events():
			if strings.Contains(ev.Body, fragment) {
				return ev
			}
		case <-deadline:
			t.Fatalf("never observed event containing %q", fragment)
			return client.Event{}
		}
	}
}

// sayUntil retries a chat line until the recipient displays it. The
// direct channel comes up asynchronously after the accept, so the first
// attempts may race the handoff.
func sayUntil(t *testing.T, from, to *user, text string) client.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		from.session.Submit(domain.SayIntent{Text: text})
		select {
		case ev := <-to.session.Events():
			if strings.Contains(ev.Body, text) {
				return ev
			}
		case <-deadline:
			t.Fatalf("%q never reached the recipient", text)
			return client.Event{}
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func Test_Scenario_PrivateChat(t *testing.T) {
	req := require.New(t)
	orchestrator := startServer(t, 30*time.Second)

	alice := connect(t, orchestrator, "alice", time.Second)
	bob := connect(t, orchestrator, "bob", time.Second)

	// When alice searches for bob
	alice.session.Submit(domain.SearchIntent{Target: "bob"})
	waitEvent(t, alice, "bob is online")

	// When alice invites bob and bob accepts
	alice.session.Submit(domain.ChatRequestIntent{Target: "bob"})
	waitEvent(t, bob, "alice wants to chat with you")
	bob.session.Submit(domain.OkIntent{Target: "alice"})

	// Then both sides learn the session is live
	waitEvent(t, bob, "chat with alice accepted")
	waitEvent(t, alice, "bob accepted your chat request")

	// And a search from the now-busy alice is dropped without a
	// response frame
	alice.session.Submit(domain.SearchIntent{Target: "bob"})
	select {
	case ev := <-alice.session.Events():
		req.NotContains(ev.Body, "online")
	case <-time.After(700 * time.Millisecond):
	}

	// And payloads travel directly, tagged with the sender identity
	ev := sayUntil(t, alice, bob, "first direct line")
	req.Equal("alice", ev.From)
	ev = sayUntil(t, bob, alice, "right back at you")
	req.Equal("bob", ev.From)

	// When alice exits the private session
	alice.session.Submit(domain.ExitIntent{})
	waitEvent(t, alice, "chat session closed")
	waitEvent(t, bob, "chat session closed")

	// Then both are idle again and may log out
	alice.session.Submit(domain.LogoutIntent{})
	bob.session.Submit(domain.LogoutIntent{})
	req.NoError(<-alice.done)
	req.NoError(<-bob.done)
}

func Test_Scenario_GroupChat(t *testing.T) {
	req := require.New(t)
	orchestrator := startServer(t, 30*time.Second)

	alice := connect(t, orchestrator, "alice", time.Second)
	bob := connect(t, orchestrator, "bob", time.Second)
	carol := connect(t, orchestrator, "carol", time.Second)

	// When alice opens a group with bob and carol
	alice.session.Submit(domain.GroupChatIntent{Members: []string{"bob", "carol"}})
	waitEvent(t, alice, "created. invitations sent")

	// Then both receive an invitation naming the room
	invite := waitEvent(t, bob, "alice invites you to group chat")
	waitEvent(t, carol, "alice invites you to group chat")

	match := regexp.MustCompile(`group chat (\d+)`).FindStringSubmatch(invite.Body)
	req.Len(match, 2)
	id, err := strconv.Atoi(match[1])
	req.NoError(err)
	room := domain.RoomID(id)

	// When bob joins and carol declines
	bob.session.Submit(domain.OkGroupIntent{Room: room})
	waitEvent(t, alice, "bob joined group")
	carol.session.Submit(domain.RejectGroupIntent{Room: room})
	waitEvent(t, alice, "carol declined the invitation")

	// Then relayed text reaches the members, censored on the way
	ev := sayUntil(t, bob, alice, "right, moving on")
	req.Equal("bob", ev.From)
	bob.session.Submit(domain.SayIntent{Text: "damn meeting"})
	ev = waitEvent(t, alice, "meeting")
	req.Equal("**** meeting", ev.Body)

	// And carol, who declined, is still idle and reachable
	carol.session.Submit(domain.SearchIntent{Target: "bob"})
	ev = waitEvent(t, carol, "bob is online")
	req.Equal("server", ev.From)

	// When bob leaves and alice follows
	bob.session.Submit(domain.ExitGroupIntent{})
	waitEvent(t, bob, "you left group")
	waitEvent(t, alice, "bob left group")
	alice.session.Submit(domain.ExitGroupIntent{})
	waitEvent(t, alice, "you left group")

	for _, u := range []*user{alice, bob, carol} {
		u.session.Submit(domain.LogoutIntent{})
		req.NoError(<-u.done)
	}
}

func Test_Scenario_LivenessEviction(t *testing.T) {
	req := require.New(t)
	orchestrator := startServer(t, time.Second)

	// Given a client whose heartbeats never arrive in time
	silent := connect(t, orchestrator, "sleepy", time.Hour)

	// Then the server evicts it and the control channel dies
	select {
	case err := <-silent.done:
		req.Error(err)
	case <-time.After(10 * time.Second):
		t.Fatal("silent client was never evicted")
	}
}
