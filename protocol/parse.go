package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"peerchat/domain"
	errs "peerchat/errors"
)

// Control payloads look like &&TAG&& or &&TAG&&|field|field. A payload
// without the tag marker is chat text, relayed verbatim.
const tagMarker = "&&"

// Compose renders a tagged payload.
func Compose(tag domain.Tag, fields ...string) string {
	var b strings.Builder
	b.WriteString(tagMarker)
	b.WriteString(string(tag))
	b.WriteString(tagMarker)
	for _, f := range fields {
		b.WriteString("|")
		b.WriteString(f)
	}
	return b.String()
}

// ParseControl decodes one inbound payload into the closed message
// union. Untagged payloads are chat text. Tag and field errors are
// protocol faults: the caller drops the frame and keeps the loop alive.
func ParseControl(payload string) (domain.ControlMessage, error) {
	if !strings.HasPrefix(payload, tagMarker) {
		return domain.Message{Body: payload}, nil
	}

	tag, fields, err := split(payload)
	if err != nil {
		return nil, err
	}

	switch tag {
	case domain.TagRegister:
		if len(fields) != 2 {
			return nil, arity(tag, 2, fields)
		}
		port, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: REGISTER port %q", errs.ErrProtocol, fields[1])
		}
		return domain.Register{Username: fields[0], ListenPort: port}, nil

	case domain.TagHello:
		if len(fields) != 1 {
			return nil, arity(tag, 1, fields)
		}
		return domain.Heartbeat{Username: fields[0]}, nil

	case domain.TagLogout:
		return domain.Logout{}, nil

	case domain.TagSearch:
		if len(fields) != 2 {
			return nil, arity(tag, 2, fields)
		}
		return domain.Search{Target: fields[0], Requester: fields[1]}, nil

	case domain.TagChatRequest:
		if len(fields) != 2 {
			return nil, arity(tag, 2, fields)
		}
		return domain.ChatRequest{Target: fields[0], Requester: fields[1]}, nil

	case domain.TagOk:
		if len(fields) != 3 {
			return nil, arity(tag, 3, fields)
		}
		port, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: OK port %q", errs.ErrProtocol, fields[2])
		}
		return domain.Ok{Target: fields[0], Requester: fields[1], RequesterPort: port}, nil

	case domain.TagReject:
		if len(fields) != 2 {
			return nil, arity(tag, 2, fields)
		}
		return domain.Reject{Target: fields[0], Requester: fields[1]}, nil

	case domain.TagExit:
		if len(fields) != 1 {
			return nil, arity(tag, 1, fields)
		}
		return domain.Exit{Requester: fields[0]}, nil

	case domain.TagGroupChat:
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: GROUPCHAT needs an admin and at least one member", errs.ErrProtocol)
		}
		return domain.GroupChat{Admin: fields[0], Members: trimEmpty(fields[1:])}, nil

	case domain.TagOkGroup:
		member, room, err := memberAndRoom(tag, fields)
		if err != nil {
			return nil, err
		}
		return domain.OkGroup{Member: member, Room: room}, nil

	case domain.TagRejectGroup:
		member, room, err := memberAndRoom(tag, fields)
		if err != nil {
			return nil, err
		}
		return domain.RejectGroup{Member: member, Room: room}, nil

	case domain.TagExitGroup:
		if len(fields) != 1 {
			return nil, arity(tag, 1, fields)
		}
		return domain.ExitGroup{Member: fields[0]}, nil

	default:
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownTag, tag)
	}
}

// Response is a decoded server push body on the client side. Untagged
// bodies carry Text only.
type Response struct {
	Tag    domain.Tag
	Text   string
	Fields []string
}

// ParseResponse decodes a push body. ok is false for plain notice text,
// in which case the body renders as-is.
func ParseResponse(body string) (Response, bool) {
	if !strings.HasPrefix(body, tagMarker) {
		return Response{Text: body}, false
	}
	tag, fields, err := split(body)
	if err != nil {
		return Response{Text: body}, false
	}
	resp := Response{Tag: tag}
	if len(fields) > 0 {
		resp.Text = fields[0]
		resp.Fields = fields[1:]
	}
	return resp, true
}

func split(payload string) (domain.Tag, []string, error) {
	rest := payload[len(tagMarker):]
	end := strings.Index(rest, tagMarker)
	if end <= 0 {
		return "", nil, fmt.Errorf("%w: unterminated tag in %q", errs.ErrProtocol, payload)
	}
	tag := domain.Tag(rest[:end])
	rest = rest[end+len(tagMarker):]
	if rest == "" {
		return tag, nil, nil
	}
	if !strings.HasPrefix(rest, "|") {
		return "", nil, fmt.Errorf("%w: malformed fields in %q", errs.ErrProtocol, payload)
	}
	return tag, strings.Split(rest[1:], "|"), nil
}

func memberAndRoom(tag domain.Tag, fields []string) (string, domain.RoomID, error) {
	if len(fields) != 2 {
		return "", 0, arity(tag, 2, fields)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s room %q", errs.ErrProtocol, tag, fields[1])
	}
	return fields[0], domain.RoomID(id), nil
}

func arity(tag domain.Tag, want int, got []string) error {
	return fmt.Errorf("%w: %s expects %d fields, got %d", errs.ErrProtocol, tag, want, len(got))
}

// trimEmpty drops empty member fields; the original clients terminate
// the member list with a trailing separator.
func trimEmpty(fields []string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
