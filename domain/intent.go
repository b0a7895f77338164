package domain

// Intent is a structured user action handed to the client session.
// Interactive line reading and human command syntax live outside the
// protocol layer; by the time an intent reaches the session it is
// already typed.
type Intent interface {
	isIntent()
}

type SearchIntent struct{ Target string }

type ChatRequestIntent struct{ Target string }

type OkIntent struct{ Target string }

type RejectIntent struct{ Target string }

type ExitIntent struct{}

type GroupChatIntent struct{ Members []string }

type OkGroupIntent struct{ Room RoomID }

type RejectGroupIntent struct{ Room RoomID }

type ExitGroupIntent struct{}

type SayIntent struct{ Text string }

type LogoutIntent struct{}

func (SearchIntent) isIntent()      {}
func (ChatRequestIntent) isIntent() {}
func (OkIntent) isIntent()          {}
func (RejectIntent) isIntent()      {}
func (ExitIntent) isIntent()        {}
func (GroupChatIntent) isIntent()   {}
func (OkGroupIntent) isIntent()     {}
func (RejectGroupIntent) isIntent() {}
func (ExitGroupIntent) isIntent()   {}
func (SayIntent) isIntent()         {}
func (LogoutIntent) isIntent()      {}
