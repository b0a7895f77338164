package runtime

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"peerchat/contract"
	"peerchat/domain"
	errs "peerchat/errors"
	"peerchat/moderation"
	"peerchat/protocol"
)

var validate = validator.New()

// Negotiator drives the session state machine: search, chat request,
// accept and reject, exit, group invitations, joins and leaves. It is
// the only mutator of client records and rooms, and it always runs on
// the single dispatch goroutine, so one transition completes before the
// next command is observed.
//
// A control message whose precondition state does not match the actor's
// current state is dropped: no transition, no error frame.
type Negotiator struct {
	log       *slog.Logger
	registry  contract.IRegistry
	rooms     contract.IRoomManager
	moderator *moderation.Moderator
	limit     time.Duration
	lastDecay time.Time
	cleaning  map[domain.Handle]struct{}
}

func NewNegotiator(log *slog.Logger, registry contract.IRegistry,
	rooms contract.IRoomManager, moderator *moderation.Moderator,
	livenessLimit time.Duration) *Negotiator {
	return &Negotiator{
		log:       log,
		registry:  registry,
		rooms:     rooms,
		moderator: moderator,
		limit:     livenessLimit,
		lastDecay: time.Now(),
		cleaning:  make(map[domain.Handle]struct{}),
	}
}

// Register completes the handshake of an accepted connection. The
// liveness budget starts at the configured limit.
func (n *Negotiator) Register(cmd domain.RegisterCommand) error {
	req := domain.Register{Username: cmd.Username, ListenPort: cmd.ListenPort}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrProtocol, err)
	}

	now := time.Now()
	n.registry.Register(&domain.Client{
		Handle:     cmd.Handle,
		Username:   cmd.Username,
		Host:       cmd.Host,
		ListenPort: cmd.ListenPort,
		Budget:     n.limit,
		UpdatedAt:  now,
		State:      domain.IdleState(),
	})
	n.log.Info("Client registered",
		"username", cmd.Username,
		"endpoint", fmt.Sprintf("%s:%d", cmd.Host, cmd.ListenPort),
		"handle", cmd.Handle)
	n.push(cmd.Handle, protocol.ServerIdentity,
		fmt.Sprintf("welcome %s. you are connected.", cmd.Username))
	return nil
}

// HandleFrame applies one decoded control frame from a registered
// connection.
func (n *Negotiator) HandleFrame(from domain.Handle, msg domain.ControlMessage) {
	actor, ok := n.registry.Get(from)
	if !ok {
		n.log.Debug("Frame from unknown handle dropped", "handle", from)
		return
	}

	switch m := msg.(type) {
	case domain.Search:
		n.search(actor, m)
	case domain.ChatRequest:
		n.chatRequest(actor, m)
	case domain.Ok:
		n.acceptPrivate(actor, m)
	case domain.Reject:
		n.rejectPrivate(actor, m)
	case domain.Exit:
		n.exitPrivate(actor)
	case domain.GroupChat:
		n.groupChat(actor, m)
	case domain.OkGroup:
		n.acceptGroup(actor, m)
	case domain.RejectGroup:
		n.rejectGroup(actor, m)
	case domain.ExitGroup:
		n.exitGroup(actor)
	case domain.Message:
		n.relay(actor, m)
	case domain.Logout:
		n.logout(actor)
	default:
		n.log.Warn("Control message without negotiation rule dropped",
			"tag", msg.Tag(), "username", actor.Username)
	}
}

func (n *Negotiator) search(actor *domain.Client, m domain.Search) {
	if !n.requireIdle(actor, m) {
		return
	}
	if m.Target == actor.Username {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagInvalidSearch, "you cannot search for yourself."))
		return
	}
	if _, ok := n.registry.FindByUsername(m.Target); !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, "user not found"))
		return
	}
	n.push(actor.Handle, protocol.ServerIdentity,
		protocol.Compose(domain.TagFound, fmt.Sprintf("user %s is online.", m.Target)))
}

func (n *Negotiator) chatRequest(actor *domain.Client, m domain.ChatRequest) {
	if !n.requireIdle(actor, m) {
		return
	}
	target, ok := n.lookup(m.Target)
	if !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, "user not found"))
		return
	}
	if n.rooms.IsBusy(target.Handle) {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagBusy, "the user is busy. try again later."))
		return
	}
	n.push(target.Handle, protocol.ServerIdentity,
		fmt.Sprintf("%s wants to chat with you. reply with OK %s or REJECT %s.",
			actor.Username, actor.Username, actor.Username))
}

// acceptPrivate allocates the private room once the invited side agrees.
// Both participants transition together and each is told the
// counterpart's advertised endpoint for the direct handoff.
func (n *Negotiator) acceptPrivate(actor *domain.Client, m domain.Ok) {
	if !n.requireIdle(actor, m) {
		return
	}
	requester, ok := n.lookup(m.Requester)
	if !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, "user not found"))
		return
	}
	if n.rooms.IsBusy(requester.Handle) || n.rooms.IsBusy(actor.Handle) {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagBusy, "the user is busy. try again later."))
		return
	}

	n.rooms.OpenPrivate(requester.Handle, actor.Handle)
	n.setState(requester.Handle, domain.PrivateState())
	n.setState(actor.Handle, domain.PrivateState())

	n.push(actor.Handle, protocol.ServerIdentity,
		protocol.Compose(domain.TagClientOk,
			fmt.Sprintf("chat with %s accepted. opening direct channel.", requester.Username),
			requester.Endpoint()))
	n.push(requester.Handle, protocol.ServerIdentity,
		protocol.Compose(domain.TagClientOk,
			fmt.Sprintf("%s accepted your chat request. opening direct channel.", actor.Username),
			actor.Endpoint()))
	n.log.Info("Private session negotiated",
		"requester", requester.Username, "target", actor.Username)
}

func (n *Negotiator) rejectPrivate(actor *domain.Client, m domain.Reject) {
	if !n.requireIdle(actor, m) {
		return
	}
	requester, ok := n.lookup(m.Requester)
	if !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, "user not found"))
		return
	}
	n.push(actor.Handle, protocol.ServerIdentity,
		fmt.Sprintf("you rejected the chat request from %s.", requester.Username))
	n.push(requester.Handle, protocol.ServerIdentity,
		fmt.Sprintf("%s rejected your chat request.", actor.Username))
}

// exitPrivate destroys the room and returns both sides to idle in the
// same operation; there is never a state with only one side released.
func (n *Negotiator) exitPrivate(actor *domain.Client) {
	if actor.State.Kind != domain.InPrivate {
		n.dropped(actor, domain.TagExit)
		return
	}
	room, ok := n.rooms.ClosePrivateFor(actor.Handle)
	if !ok {
		n.log.Warn("Private state without room, resetting", "username", actor.Username)
		n.setState(actor.Handle, domain.IdleState())
		return
	}
	for _, h := range room.Members() {
		n.setState(h, domain.IdleState())
		n.push(h, protocol.ServerIdentity,
			protocol.Compose(domain.TagClientExit, "chat session closed."))
	}
}

func (n *Negotiator) groupChat(actor *domain.Client, m domain.GroupChat) {
	if !n.requireIdle(actor, m) {
		return
	}
	room := n.rooms.CreateGroup(actor.Handle)
	n.setState(actor.Handle, domain.GroupState(room.ID))
	n.push(actor.Handle, protocol.ServerIdentity,
		fmt.Sprintf("group chat %d created. invitations sent.", room.ID))

	for _, name := range m.Members {
		if name == actor.Username {
			continue
		}
		member, ok := n.lookup(name)
		if !ok {
			n.push(actor.Handle, protocol.ServerIdentity,
				protocol.Compose(domain.TagNotFound, fmt.Sprintf("user %s not found", name)))
			continue
		}
		if n.rooms.IsBusy(member.Handle) {
			n.push(actor.Handle, protocol.ServerIdentity,
				protocol.Compose(domain.TagBusy,
					fmt.Sprintf("%s is busy. try again later.", name)))
			continue
		}
		n.push(member.Handle, protocol.ServerIdentity,
			fmt.Sprintf("%s invites you to group chat %d. reply with OK GROUP %d or REJECT GROUP %d.",
				actor.Username, room.ID, room.ID, room.ID))
	}
}

func (n *Negotiator) acceptGroup(actor *domain.Client, m domain.OkGroup) {
	if !n.requireIdle(actor, m) {
		return
	}
	room, ok := n.rooms.JoinGroup(m.Room, actor.Handle)
	if !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, fmt.Sprintf("group %d no longer exists.", m.Room)))
		return
	}
	n.setState(actor.Handle, domain.GroupState(room.ID))
	notice := fmt.Sprintf("%s joined group %d.", actor.Username, room.ID)
	for _, h := range append([]domain.Handle(nil), room.Members...) {
		n.push(h, protocol.ServerIdentity, notice)
	}
}

func (n *Negotiator) rejectGroup(actor *domain.Client, m domain.RejectGroup) {
	if !n.requireIdle(actor, m) {
		return
	}
	room, ok := n.rooms.Group(m.Room)
	if !ok {
		n.push(actor.Handle, protocol.ServerIdentity,
			protocol.Compose(domain.TagNotFound, fmt.Sprintf("group %d no longer exists.", m.Room)))
		return
	}
	n.push(room.Admin, protocol.ServerIdentity,
		fmt.Sprintf("%s declined the invitation to group %d.", actor.Username, m.Room))
}

func (n *Negotiator) exitGroup(actor *domain.Client) {
	if actor.State.Kind != domain.InGroup {
		n.dropped(actor, domain.TagExitGroup)
		return
	}
	id, remaining, ok := n.rooms.LeaveGroup(actor.Handle)
	if !ok {
		n.log.Warn("Group state without room, resetting", "username", actor.Username)
		n.setState(actor.Handle, domain.IdleState())
		return
	}
	n.setState(actor.Handle, domain.IdleState())
	n.push(actor.Handle, protocol.ServerIdentity, fmt.Sprintf("you left group %d.", id))
	notice := fmt.Sprintf("%s left group %d.", actor.Username, id)
	for _, h := range remaining {
		n.push(h, protocol.ServerIdentity, notice)
	}
}

// relay forwards group chat text to every current room member. Private
// payloads never pass through here: after the handoff they travel on
// the direct peer connection only.
func (n *Negotiator) relay(actor *domain.Client, m domain.Message) {
	if actor.State.Kind != domain.InGroup {
		n.dropped(actor, domain.TagMessage)
		return
	}
	room, ok := n.rooms.GroupOf(actor.Handle)
	if !ok {
		n.log.Warn("Group state without room, resetting", "username", actor.Username)
		n.setState(actor.Handle, domain.IdleState())
		return
	}

	body := m.Body
	if n.moderator != nil {
		body = n.moderator.Censor(body)
	}
	n.log.Debug("Relaying group message",
		"room", room.ID,
		"sender", actor.Username,
		"lang", whatlanggo.LangToString(whatlanggo.DetectLang(m.Body)))

	for _, h := range append([]domain.Handle(nil), room.Members...) {
		n.push(h, actor.Username, body)
	}
}

func (n *Negotiator) logout(actor *domain.Client) {
	if actor.State.Kind != domain.Idle {
		n.dropped(actor, domain.TagLogout)
		return
	}
	n.push(actor.Handle, protocol.ServerIdentity,
		protocol.Compose(domain.TagLogoutSuccess, fmt.Sprintf("goodbye %s.", actor.Username)))
	n.evict(actor.Handle, nil)
}

// Heartbeat refills the budget of the named client. Heartbeats for
// usernames that are not currently registered are ignored.
func (n *Negotiator) Heartbeat(username string) {
	handle, ok := n.registry.FindByUsername(username)
	if !ok {
		n.log.Debug("Heartbeat for unknown username ignored", "username", username)
		return
	}
	n.registry.Update(handle, func(c *domain.Client) {
		c.Budget = n.limit
		c.UpdatedAt = time.Now()
	})
}

// Decay runs one liveness pass: every budget loses the wall-clock time
// elapsed since the previous pass, and exhausted clients are evicted as
// if they had logged out.
func (n *Negotiator) Decay(now time.Time) {
	elapsed := now.Sub(n.lastDecay)
	n.lastDecay = now
	if elapsed <= 0 {
		return
	}

	expired := lo.FilterMap(n.registry.Snapshot(), func(c domain.Client, _ int) (domain.Handle, bool) {
		exhausted := false
		ok := n.registry.Update(c.Handle, func(rec *domain.Client) {
			rec.Budget -= elapsed
			exhausted = rec.Budget <= 0
		})
		return c.Handle, ok && exhausted
	})

	for _, h := range expired {
		n.evict(h, errs.ErrLivenessTimeout)
	}
}

// Disconnect handles a closed or failed control connection: the handle
// leaves the registry and every room it belonged to, with the same
// vacancy notifications as an explicit exit.
func (n *Negotiator) Disconnect(from domain.Handle) {
	n.evict(from, errs.ErrTransportClosed)
}

// evict is the single cleanup path shared by logout, transport loss and
// liveness timeout. Per-connection failures stay isolated here and
// never unwind the dispatch loop.
func (n *Negotiator) evict(handle domain.Handle, cause error) {
	// A push failure during vacancy notifications must not re-enter
	// cleanup for the same handle.
	if _, busy := n.cleaning[handle]; busy {
		return
	}
	n.cleaning[handle] = struct{}{}
	defer delete(n.cleaning, handle)

	client, registered := n.registry.Get(handle)

	if registered {
		switch client.State.Kind {
		case domain.InPrivate:
			n.exitPrivate(client)
		case domain.InGroup:
			n.exitGroup(client)
		}
	}

	if sink, ok := n.registry.Sink(handle); ok {
		_ = sink.Close()
	}
	n.registry.Remove(handle)

	if registered {
		switch cause {
		case nil:
			n.log.Info("Client logged out", "username", client.Username)
		case errs.ErrLivenessTimeout:
			n.log.Warn("Client evicted, liveness budget exhausted", "username", client.Username)
		default:
			n.log.Info("Client connection lost", "username", client.Username)
		}
	}
}

func (n *Negotiator) lookup(name string) (*domain.Client, bool) {
	handle, ok := n.registry.FindByUsername(name)
	if !ok {
		return nil, false
	}
	return n.registry.Get(handle)
}

// setState transitions a session through the registry write lock, so
// snapshot observers never see a torn record.
func (n *Negotiator) setState(handle domain.Handle, state domain.SessionState) {
	n.registry.Update(handle, func(c *domain.Client) {
		c.State = state
	})
}

// push delivers one (identity, body) pair. A dead sink converts into
// cleanup of that client only; the send loop itself never aborts.
func (n *Negotiator) push(handle domain.Handle, identity, body string) {
	sink, ok := n.registry.Sink(handle)
	if !ok {
		return
	}
	if err := sink.Push(identity, body); err != nil {
		n.log.Warn("Push failed, cleaning connection", "handle", handle, "err", err)
		n.evict(handle, errs.ErrTransportClosed)
	}
}

func (n *Negotiator) requireIdle(actor *domain.Client, msg domain.ControlMessage) bool {
	if actor.State.Kind != domain.Idle {
		n.dropped(actor, msg.Tag())
		return false
	}
	return true
}

func (n *Negotiator) dropped(actor *domain.Client, tag domain.Tag) {
	n.log.Debug("Message dropped in current session state",
		"tag", tag, "username", actor.Username, "state", actor.State.Kind.String())
}
