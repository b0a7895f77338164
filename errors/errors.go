package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Codec boundary.
	ErrProtocol   = fmt.Errorf("malformed frame")
	ErrUnknownTag = fmt.Errorf("unknown control tag")

	// Registry lookups.
	ErrLookup = fmt.Errorf("no such client")

	// Negotiator guard table: message inconsistent with the actor's state.
	ErrSessionState = fmt.Errorf("message dropped in current session state")

	// Transport outcomes.
	ErrTransportClosed = fmt.Errorf("peer closed connection")
	ErrLivenessTimeout = fmt.Errorf("liveness budget exhausted")

	ErrEmptyWords = fmt.Errorf("no words have been found")
)
