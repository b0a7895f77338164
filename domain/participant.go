// Package domain contains core concepts of the signaling system.
// This file defines the Client record and its session lifecycle.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Handle is a stable opaque identifier issued when a connection is
// accepted. It decouples registry bookkeeping from connection identity.
type Handle uuid.UUID

func NewHandle() Handle {
	return Handle(uuid.New())
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Client is the registry record for one connected participant.
// Created on registration, mutated by the negotiator and the liveness
// monitor, destroyed on eviction or explicit logout.
type Client struct {
	Handle     Handle
	Username   string
	Host       string // observed on the control connection
	ListenPort int    // peer listener advertised at registration
	Budget     time.Duration
	UpdatedAt  time.Time
	State      SessionState
}

// Endpoint is the advertised peer-listening endpoint, dialed by the
// counterpart after a private session is accepted.
func (c *Client) Endpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.ListenPort))
}
