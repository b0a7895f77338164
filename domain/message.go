// Package domain contains core concepts of the signaling system.
// This file defines the closed union of control messages. Payloads are
// decoded exactly once at the codec boundary; past it, nothing in the
// system looks at free-form protocol text again.
package domain

// Tag identifies a control message variant on the wire.
type Tag string

const (
	TagRegister    Tag = "REGISTER"
	TagHello       Tag = "HELLO"
	TagLogout      Tag = "LOGOUT"
	TagSearch      Tag = "SEARCH"
	TagChatRequest Tag = "CHATREQUEST"
	TagOk          Tag = "OK"
	TagReject      Tag = "REJECT"
	TagExit        Tag = "EXIT"
	TagGroupChat   Tag = "GROUPCHAT"
	TagOkGroup     Tag = "OKGROUP"
	TagRejectGroup Tag = "REJECTGROUP"
	TagExitGroup   Tag = "EXITGROUP"
	TagMessage     Tag = "MESSAGE"

	// Server -> client response tags. Anything else pushed by the
	// server is plain notice text.
	TagLogoutSuccess Tag = "LOGOUTSUCCESS"
	TagFound         Tag = "FOUND"
	TagNotFound      Tag = "NOTFOUND"
	TagInvalidSearch Tag = "INVALIDSEARCH"
	TagBusy          Tag = "BUSY"
	TagClientOk      Tag = "CLIENTOK"
	TagClientExit    Tag = "CLIENTEXIT"
)

// ControlMessage is the decoded form of one inbound frame payload.
type ControlMessage interface {
	Tag() Tag
}

// Register is the first frame of every control connection.
type Register struct {
	Username   string `validate:"required,min=1,max=32,alphanum"`
	ListenPort int    `validate:"required,min=1,max=65535"`
}

func (Register) Tag() Tag { return TagRegister }

// Heartbeat arrives on the connectionless side channel.
type Heartbeat struct {
	Username string
}

func (Heartbeat) Tag() Tag { return TagHello }

type Logout struct{}

func (Logout) Tag() Tag { return TagLogout }

type Search struct {
	Target    string
	Requester string
}

func (Search) Tag() Tag { return TagSearch }

type ChatRequest struct {
	Target    string
	Requester string
}

func (ChatRequest) Tag() Tag { return TagChatRequest }

// Ok is sent by the invited side to accept a private chat. The
// requester's listen port travels with it, though the registry record
// stays authoritative for the advertised endpoint.
type Ok struct {
	Target        string
	Requester     string
	RequesterPort int
}

func (Ok) Tag() Tag { return TagOk }

type Reject struct {
	Target    string
	Requester string
}

func (Reject) Tag() Tag { return TagReject }

type Exit struct {
	Requester string
}

func (Exit) Tag() Tag { return TagExit }

type GroupChat struct {
	Admin   string
	Members []string
}

func (GroupChat) Tag() Tag { return TagGroupChat }

type OkGroup struct {
	Member string
	Room   RoomID
}

func (OkGroup) Tag() Tag { return TagOkGroup }

type RejectGroup struct {
	Member string
	Room   RoomID
}

func (RejectGroup) Tag() Tag { return TagRejectGroup }

type ExitGroup struct {
	Member string
}

func (ExitGroup) Tag() Tag { return TagExitGroup }

// Message is sender-prefixed chat text relayed verbatim to the members
// of the actor's group room.
type Message struct {
	Body string
}

func (Message) Tag() Tag { return TagMessage }
