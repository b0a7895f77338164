package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"peerchat/client"
	"peerchat/domain"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddr        string        `env:"CHAT_SERVER_ADDR,default=127.0.0.1:1234"`
	HeartbeatAddr     string        `env:"CHAT_HEARTBEAT_ADDR,default=127.0.0.1:1235"`
	Username          string        `env:"CHAT_USERNAME,required=true"`
	Password          string        `env:"CHAT_PASSWORD"`
	ListenPort        int           `env:"CHAT_LISTEN_PORT,default=0"`
	HeartbeatInterval time.Duration `env:"CHAT_HEARTBEAT_INTERVAL,default=8s"`
	LogLevel          string        `env:"LOG_LEVEL,default=WARN"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := client.NewSession(log, client.Config{
		Username:          config.Username,
		Password:          config.Password,
		ServerAddr:        config.ServerAddr,
		HeartbeatAddr:     config.HeartbeatAddr,
		ListenPort:        config.ListenPort,
		HeartbeatInterval: config.HeartbeatInterval,
	})
	if err := session.Dial(ctx); err != nil {
		return exitRuntime, err
	}

	color.New(color.FgGreen).Println(fmt.Sprintf("connected to %s as %s (peer port %d)",
		config.ServerAddr, config.Username, session.ListenPort()))

	go display(ctx, session)
	go readIntents(ctx, session)

	if err := session.Run(ctx); err != nil {
		return exitRuntime, err
	}
	color.New(color.FgGray).Println("goodbye " + config.Username)
	return exitOK, nil
}

// display renders inbound events until the session ends. Server
// notices and peer chat lines get distinct colors.
func display(ctx context.Context, session *client.Session) {
	server := color.New(color.FgYellow)
	peer := color.New(color.FgCyan)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-session.Events():
			line := fmt.Sprintf("%s: %s", ev.From, ev.Body)
			if ev.From == "server" {
				server.Println(line)
			} else {
				peer.Println(line)
			}
		}
	}
}

// readIntents is the interactive collaborator: it turns typed lines
// into structured intents. Everything past this point is protocol.
func readIntents(ctx context.Context, session *client.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		if intent, ok := parseLine(scanner.Text()); ok {
			session.Submit(intent)
		}
	}
}

func parseLine(line string) (domain.Intent, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	tokens := strings.Fields(line)

	switch {
	case line == "LOGOUT":
		return domain.LogoutIntent{}, true
	case line == "EXIT":
		return domain.ExitIntent{}, true
	case line == "EXIT GROUP":
		return domain.ExitGroupIntent{}, true
	case strings.HasPrefix(line, "SEARCH ") && len(tokens) == 2:
		return domain.SearchIntent{Target: tokens[1]}, true
	case strings.HasPrefix(line, "CHAT REQUEST ") && len(tokens) == 3:
		return domain.ChatRequestIntent{Target: tokens[2]}, true
	case strings.HasPrefix(line, "OK GROUP ") && len(tokens) == 3:
		if room, err := strconv.Atoi(tokens[2]); err == nil {
			return domain.OkGroupIntent{Room: domain.RoomID(room)}, true
		}
		return nil, false
	case strings.HasPrefix(line, "REJECT GROUP ") && len(tokens) == 3:
		if room, err := strconv.Atoi(tokens[2]); err == nil {
			return domain.RejectGroupIntent{Room: domain.RoomID(room)}, true
		}
		return nil, false
	case strings.HasPrefix(line, "OK ") && len(tokens) == 2:
		return domain.OkIntent{Target: tokens[1]}, true
	case strings.HasPrefix(line, "REJECT ") && len(tokens) == 2:
		return domain.RejectIntent{Target: tokens[1]}, true
	case strings.HasPrefix(line, "GROUP CHAT ") && len(tokens) > 2:
		return domain.GroupChatIntent{Members: tokens[2:]}, true
	default:
		return domain.SayIntent{Text: line}, true
	}
}
