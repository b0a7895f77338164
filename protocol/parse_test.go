package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"peerchat/domain"
	errs "peerchat/errors"
)

func TestParseControl_UntaggedIsChatText(t *testing.T) {
	req := require.New(t)

	msg, err := ParseControl("hello everyone")

	req.NoError(err)
	req.Equal(domain.Message{Body: "hello everyone"}, msg)
}

func TestParseControl_KnownTags(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		payload  string
		expected domain.ControlMessage
	}{
		{
			name:     "Register",
			payload:  Compose(domain.TagRegister, "alice", "9001"),
			expected: domain.Register{Username: "alice", ListenPort: 9001},
		},
		{
			name:     "Heartbeat",
			payload:  Compose(domain.TagHello, "alice"),
			expected: domain.Heartbeat{Username: "alice"},
		},
		{
			name:     "Logout",
			payload:  Compose(domain.TagLogout),
			expected: domain.Logout{},
		},
		{
			name:     "Search",
			payload:  Compose(domain.TagSearch, "bob", "alice"),
			expected: domain.Search{Target: "bob", Requester: "alice"},
		},
		{
			name:     "Chat request",
			payload:  Compose(domain.TagChatRequest, "bob", "alice"),
			expected: domain.ChatRequest{Target: "bob", Requester: "alice"},
		},
		{
			name:     "Ok carries the requester listen port",
			payload:  Compose(domain.TagOk, "bob", "alice", "9001"),
			expected: domain.Ok{Target: "bob", Requester: "alice", RequesterPort: 9001},
		},
		{
			name:     "Reject",
			payload:  Compose(domain.TagReject, "bob", "alice"),
			expected: domain.Reject{Target: "bob", Requester: "alice"},
		},
		{
			name:     "Exit",
			payload:  Compose(domain.TagExit, "alice"),
			expected: domain.Exit{Requester: "alice"},
		},
		{
			name:     "Group chat",
			payload:  Compose(domain.TagGroupChat, "alice", "bob", "carol"),
			expected: domain.GroupChat{Admin: "alice", Members: []string{"bob", "carol"}},
		},
		{
			name:     "Group chat with trailing separator",
			payload:  Compose(domain.TagGroupChat, "alice", "bob", ""),
			expected: domain.GroupChat{Admin: "alice", Members: []string{"bob"}},
		},
		{
			name:     "Ok group",
			payload:  Compose(domain.TagOkGroup, "bob", "3"),
			expected: domain.OkGroup{Member: "bob", Room: domain.RoomID(3)},
		},
		{
			name:     "Reject group",
			payload:  Compose(domain.TagRejectGroup, "bob", "3"),
			expected: domain.RejectGroup{Member: "bob", Room: domain.RoomID(3)},
		},
		{
			name:     "Exit group",
			payload:  Compose(domain.TagExitGroup, "bob"),
			expected: domain.ExitGroup{Member: "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := ParseControl(tt.payload)
			req.NoError(err)
			req.Equal(tt.expected, msg)
		})
	}
}

func TestParseControl_Faults(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		payload  string
		expected error
	}{
		{name: "Unknown tag", payload: "&&TELEPORT&&|here", expected: errs.ErrUnknownTag},
		{name: "Unterminated tag", payload: "&&SEARCH|bob", expected: errs.ErrProtocol},
		{name: "Missing fields", payload: "&&SEARCH&&|bob", expected: errs.ErrProtocol},
		{name: "Too many fields", payload: "&&EXIT&&|alice|extra", expected: errs.ErrProtocol},
		{name: "Non numeric register port", payload: "&&REGISTER&&|alice|nine", expected: errs.ErrProtocol},
		{name: "Non numeric ok port", payload: "&&OK&&|bob|alice|x", expected: errs.ErrProtocol},
		{name: "Non numeric group id", payload: "&&OKGROUP&&|bob|three", expected: errs.ErrProtocol},
		{name: "Group chat without members", payload: "&&GROUPCHAT&&|alice", expected: errs.ErrProtocol},
		{name: "Malformed field separator", payload: "&&SEARCH&&bob|alice", expected: errs.ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseControl(tt.payload)
			req.ErrorIs(err, tt.expected)
		})
	}
}

func TestParseResponse_TaggedBody(t *testing.T) {
	req := require.New(t)

	body := Compose(domain.TagClientOk, "chat with bob accepted.", "127.0.0.1:9002")
	resp, tagged := ParseResponse(body)

	req.True(tagged)
	req.Equal(domain.TagClientOk, resp.Tag)
	req.Equal("chat with bob accepted.", resp.Text)
	req.Equal([]string{"127.0.0.1:9002"}, resp.Fields)
}

func TestParseResponse_PlainNotice(t *testing.T) {
	req := require.New(t)

	resp, tagged := ParseResponse("alice wants to chat with you.")

	req.False(tagged)
	req.Equal("alice wants to chat with you.", resp.Text)
	req.Empty(resp.Fields)
}
