package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "peerchat/errors"
)

func TestFrame_RoundTrip(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "Empty payload", payload: ""},
		{name: "Short text", payload: "hello"},
		{name: "Tagged control payload", payload: "&&SEARCH&&|bob|alice"},
		{name: "UTF-8 text", payload: "un été à Paris"},
		{name: "Five digit boundary", payload: strings.Repeat("x", 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given an encoded frame
			var buf bytes.Buffer
			req.NoError(WriteFrame(&buf, []byte(tt.payload)))

			// Then the header is exactly HeaderWidth bytes
			req.Equal(HeaderWidth+len(tt.payload), buf.Len())

			// When it is read back
			payload, err := ReadFrame(&buf)

			// Then the payload survives byte for byte
			req.NoError(err)
			req.Equal(tt.payload, string(payload))
		})
	}
}

func TestFrame_HeaderIsLeftJustified(t *testing.T) {
	req := require.New(t)

	// Given a 3 byte payload
	out, err := EncodeFrame([]byte("abc"))
	req.NoError(err)

	// Then the length is left justified and space padded
	req.Equal("3    abc", string(out))
}

func TestFrame_PayloadAtCapacityEncodes(t *testing.T) {
	req := require.New(t)

	// Given the largest payload the header can express
	out, err := EncodeFrame(bytes.Repeat([]byte("x"), MaxPayload))

	// Then it encodes with a full-width header
	req.NoError(err)
	req.Equal("99999", string(out[:HeaderWidth]))
	req.Len(out, HeaderWidth+MaxPayload)
}

func TestFrame_OversizePayloadRefused(t *testing.T) {
	req := require.New(t)
	oversize := bytes.Repeat([]byte("x"), MaxPayload+1)

	// Given a payload one byte past the header capacity
	_, err := EncodeFrame(oversize)

	// Then encoding refuses it as a protocol fault
	req.ErrorIs(err, errs.ErrProtocol)

	// And nothing reaches the stream, so framing stays aligned
	var buf bytes.Buffer
	req.ErrorIs(WriteFrame(&buf, oversize), errs.ErrProtocol)
	req.Zero(buf.Len())
	req.ErrorIs(WritePush(&buf, "server", string(oversize)), errs.ErrProtocol)
	req.Zero(buf.Len())
}

func TestFrame_EOFAtHeaderBoundary(t *testing.T) {
	req := require.New(t)

	// Given a stream that ends cleanly between frames
	_, err := ReadFrame(bytes.NewReader(nil))

	// Then the reader reports a plain EOF, not a protocol fault
	req.Equal(io.EOF, err)
}

func TestFrame_TruncatedHeader(t *testing.T) {
	req := require.New(t)

	// Given a stream cut in the middle of a header
	_, err := ReadFrame(strings.NewReader("12"))

	// Then it is a protocol fault
	req.ErrorIs(err, errs.ErrProtocol)
}

func TestFrame_NonNumericHeader(t *testing.T) {
	req := require.New(t)

	_, err := ReadFrame(strings.NewReader("abcdepayload"))
	req.ErrorIs(err, errs.ErrProtocol)
}

func TestFrame_TruncatedPayload(t *testing.T) {
	req := require.New(t)

	// Given a header announcing more bytes than the stream holds
	_, err := ReadFrame(strings.NewReader("10   short"))

	req.ErrorIs(err, errs.ErrProtocol)
}

func TestPush_RoundTrip(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	// Given a server push written as an identity and body pair
	req.NoError(WritePush(&buf, ServerIdentity, "welcome alice. you are connected."))

	// When the pair is read back
	identity, body, err := ReadPush(&buf)

	// Then both frames decode independently
	req.NoError(err)
	req.Equal(ServerIdentity, identity)
	req.Equal("welcome alice. you are connected.", body)
}

func TestPush_TruncatedAfterIdentity(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	req.NoError(WriteFrame(&buf, []byte("server")))

	// When the body frame never arrives
	_, _, err := ReadPush(&buf)

	// Then the half delivered push is a protocol fault, not an EOF
	req.ErrorIs(err, errs.ErrProtocol)
}
