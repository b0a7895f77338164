package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"peerchat/client"
	"peerchat/domain"
)

// Test_Scenario_Deployed_PrivateChat exercises a deployed server from
// the outside: two real clients register, negotiate a private session
// and exchange one direct payload each way.
//
// It runs only when CHAT_SERVER_ADDR and CHAT_HEARTBEAT_ADDR point at a
// live instance.
func Test_Scenario_Deployed_PrivateChat(t *testing.T) {
	req := require.New(t)
	cfg, err := LoadConfig()
	req.NoError(err)
	if cfg.ServerAddr == "" || cfg.HeartbeatAddr == "" {
		t.Skip("CHAT_SERVER_ADDR not set, skipping deployed scenario")
	}

	log := logs.GetLoggerFromLevel(slog.LevelInfo)
	step := func(format string, args ...any) {
		if cfg.Colours {
			color.New(color.FgGreen).Println(fmt.Sprintf(format, args...))
		} else {
			t.Logf(format, args...)
		}
	}

	// The prefix isolates this run from leftovers of previous ones.
	suffix := time.Now().UnixNano() % 100000
	requester := fmt.Sprintf("%sreq%d", cfg.UserPrefix, suffix)
	responder := fmt.Sprintf("%sres%d", cfg.UserPrefix, suffix)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dial := func(name string) (*client.Session, chan error) {
		session := client.NewSession(log, client.Config{
			Username:          name,
			ServerAddr:        cfg.ServerAddr,
			HeartbeatAddr:     cfg.HeartbeatAddr,
			HeartbeatInterval: 2 * time.Second,
		})
		req.NoError(session.Dial(ctx))
		done := make(chan error, 1)
		go func() { done <- session.Run(ctx) }()
		return session, done
	}

	wait := func(s *client.Session, fragment string) client.Event {
		deadline := time.After(15 * time.Second)
		for {
			select {
			case ev := <-s.Events():
				if strings.Contains(ev.Body, fragment) {
					return ev
				}
			case <-deadline:
				t.Fatalf("never observed event containing %q", fragment)
				return client.Event{}
			}
		}
	}

	step("registering %s and %s", requester, responder)
	reqSession, reqDone := dial(requester)
	resSession, resDone := dial(responder)
	wait(reqSession, "welcome "+requester)
	wait(resSession, "welcome "+responder)

	step("negotiating the private session")
	reqSession.Submit(domain.ChatRequestIntent{Target: responder})
	wait(resSession, requester+" wants to chat with you")
	resSession.Submit(domain.OkIntent{Target: requester})
	wait(reqSession, "accepted your chat request")
	wait(resSession, "chat with "+requester+" accepted")

	step("exchanging direct payloads")
	deadline := time.After(15 * time.Second)
	delivered := false
	for !delivered {
		reqSession.Submit(domain.SayIntent{Text: "ping over the direct channel"})
		select {
		case ev := <-resSession.Events():
			delivered = strings.Contains(ev.Body, "ping over the direct channel")
		case <-deadline:
			t.Fatal("direct payload never arrived")
		case <-time.After(200 * time.Millisecond):
		}
	}
	resSession.Submit(domain.SayIntent{Text: "pong"})
	wait(reqSession, "pong")

	step("closing the session and logging out")
	reqSession.Submit(domain.ExitIntent{})
	wait(reqSession, "chat session closed")
	wait(resSession, "chat session closed")

	reqSession.Submit(domain.LogoutIntent{})
	resSession.Submit(domain.LogoutIntent{})
	req.NoError(<-reqDone)
	req.NoError(<-resDone)
}
