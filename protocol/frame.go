// Package protocol implements the framed wire codec of the signaling
// platform. A frame is a fixed-width ASCII decimal length header,
// left-justified and space padded, followed by that many payload bytes.
package protocol

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	errs "peerchat/errors"
)

// HeaderWidth is the byte width of the length header.
const HeaderWidth = 5

// MaxPayload is the largest payload length the header can express:
// HeaderWidth decimal digits. A longer payload would widen the header
// and desynchronize the stream, so encoding refuses it instead.
const MaxPayload = 99999

// ServerIdentity is the sender identity used for frames the server
// authors itself.
const ServerIdentity = "server"

// EncodeFrame renders header + payload as one buffer.
func EncodeFrame(payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds frame capacity %d",
			errs.ErrProtocol, len(payload), MaxPayload)
	}
	header := fmt.Sprintf("%-*d", HeaderWidth, len(payload))
	out := make([]byte, 0, HeaderWidth+len(payload))
	out = append(out, header...)
	return append(out, payload...), nil
}

// WriteFrame writes one frame. The underlying writer is expected to be
// a stream transport; short writes surface as errors. Nothing reaches
// the writer when the payload does not fit the frame.
func WriteFrame(w io.Writer, payload []byte) error {
	frame, err := EncodeFrame(payload)
	if err != nil {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// ReadFrame reads exactly one frame, buffering across partial reads.
// A read yielding zero bytes at a header boundary reports io.EOF: the
// peer shut down in an orderly way, which is not a protocol fault.
// A header that is truncated or not numeric is a protocol fault.
func ReadFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, HeaderWidth)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: header: %v", errs.ErrProtocol, err)
	}

	length, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: payload short by peer: %v", errs.ErrProtocol, err)
	}
	return payload, nil
}

// ReadPush reads a server push, which is always two frames back to
// back: the sender identity, then the message body.
func ReadPush(r io.Reader) (identity, body string, err error) {
	id, err := ReadFrame(r)
	if err != nil {
		return "", "", err
	}
	b, err := ReadFrame(r)
	if err != nil {
		if err == io.EOF {
			return "", "", fmt.Errorf("%w: push truncated after identity", errs.ErrProtocol)
		}
		return "", "", err
	}
	return string(id), string(b), nil
}

// WritePush writes the (identity, body) frame pair of a server push.
func WritePush(w io.Writer, identity, body string) error {
	id, err := EncodeFrame([]byte(identity))
	if err != nil {
		return err
	}
	b, err := EncodeFrame([]byte(body))
	if err != nil {
		return err
	}
	_, err = w.Write(append(id, b...))
	return err
}

func parseHeader(header []byte) (int, error) {
	text := strings.TrimRight(string(header), " ")
	length, err := strconv.Atoi(text)
	if err != nil || length < 0 {
		return 0, fmt.Errorf("%w: header %q is not a length", errs.ErrProtocol, string(header))
	}
	return length, nil
}
