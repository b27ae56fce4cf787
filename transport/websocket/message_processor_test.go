package websocket

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clientFrame encodes a masked frame the way a browser sends it.
func clientFrame(opCode byte, fin bool, payload []byte) []byte {
	mask := []byte{0x12, 0x34, 0x56, 0x78}

	first := opCode
	if fin {
		first |= 0x80
	}

	buf := []byte{first}

	switch {
	case len(payload) < 126:
		buf = append(buf, 0x80|byte(len(payload)))
	case len(payload) < 1<<16:
		buf = append(buf, 0x80|126)
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(payload)))
	default:
		buf = append(buf, 0x80|127)
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(payload)))
	}

	buf = append(buf, mask...)
	for i, b := range payload {
		buf = append(buf, b^mask[i%4])
	}

	return buf
}

func newTestConn(input []byte) (*bufio.ReadWriter, *bytes.Buffer) {
	output := &bytes.Buffer{}
	return bufio.NewReadWriter(bufio.NewReader(bytes.NewReader(input)), bufio.NewWriter(output)), output
}

func newTestServer(useCase quizUseCase) *Server {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), useCase)
}

func TestWriteFrame_ReadFrame(t *testing.T) {
	for _, size := range []int{0, 5, 125, 126, 300, 70000} {
		// Given
		payload := bytes.Repeat([]byte("a"), size)
		output := &bytes.Buffer{}

		// When
		err := writeFrame(bufio.NewWriter(output), frame{isFin: true, opCode: opCodeText, payload: payload})
		require.NoError(t, err)

		got, err := readFrame(output)

		// Then
		require.NoError(t, err, "size %d", size)
		assert.True(t, got.isFin)
		assert.Equal(t, opCodeText, got.opCode)
		assert.Len(t, got.payload, size)
	}
}

func TestReadFrame_UnmasksClientPayload(t *testing.T) {
	// Given
	input := clientFrame(opCodeText, true, []byte(`{"action":"connect"}`))

	// When
	got, err := readFrame(bytes.NewReader(input))

	// Then
	require.NoError(t, err)
	assert.Equal(t, `{"action":"connect"}`, string(got.payload))
}

func TestReadFrame_TruncatedInput(t *testing.T) {
	// Given
	input := clientFrame(opCodeText, true, []byte("hello"))

	// When
	_, err := readFrame(bytes.NewReader(input[:len(input)-2]))

	// Then
	require.Error(t, err)
}

func TestReadRequest(t *testing.T) {
	server := newTestServer(nil)

	t.Run("joins fragments", func(t *testing.T) {
		// Given
		input := append(clientFrame(opCodeText, false, []byte("geo")), clientFrame(opCodeContinuation, true, []byte("quiz"))...)
		bufrw, _ := newTestConn(input)

		// When
		got, err := server.readRequest(bufrw)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "geoquiz", string(got))
	})

	t.Run("answers ping with pong", func(t *testing.T) {
		// Given
		input := append(clientFrame(opCodePing, true, []byte("hi")), clientFrame(opCodeText, true, []byte("ok"))...)
		bufrw, output := newTestConn(input)

		// When
		got, err := server.readRequest(bufrw)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "ok", string(got))

		pong, err := readFrame(output)
		require.NoError(t, err)
		assert.Equal(t, opCodePong, pong.opCode)
		assert.Equal(t, "hi", string(pong.payload))
	})

	t.Run("close frame", func(t *testing.T) {
		// Given
		bufrw, output := newTestConn(clientFrame(opCodeClose, true, nil))

		// When
		_, err := server.readRequest(bufrw)

		// Then
		require.ErrorIs(t, err, errConnectionClosed)

		reply, readErr := readFrame(output)
		require.NoError(t, readErr)
		assert.Equal(t, opCodeClose, reply.opCode)
	})
}

func TestReadRequest_ProtocolViolations(t *testing.T) {
	server := newTestServer(nil)

	unmasked := &bytes.Buffer{}
	require.NoError(t, writeFrame(bufio.NewWriter(unmasked), frame{isFin: true, opCode: opCodeText, payload: []byte("hi")}))

	cases := []struct {
		name  string
		input []byte
	}{
		{name: "unmasked frame", input: unmasked.Bytes()},
		{name: "continuation without a message", input: clientFrame(opCodeContinuation, true, []byte("quiz"))},
		{
			name:  "new message inside a fragmented one",
			input: append(clientFrame(opCodeText, false, []byte("geo")), clientFrame(opCodeText, true, []byte("quiz"))...),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			bufrw, output := newTestConn(tc.input)

			// When
			got, err := server.readRequest(bufrw)

			// Then
			require.ErrorIs(t, err, errProtocol)
			assert.Nil(t, got)

			reply, readErr := readFrame(output)
			require.NoError(t, readErr)
			assert.Equal(t, opCodeClose, reply.opCode)
			require.Len(t, reply.payload, 2)
			assert.Equal(t, closeProtocolError, binary.BigEndian.Uint16(reply.payload))
		})
	}
}

func TestWriteHandshake(t *testing.T) {
	// Given
	output := &bytes.Buffer{}

	// When
	err := writeHandshake(bufio.NewWriter(output), "s3pPLMBiTxaQ9kYGzzhZRbK+xOo=", nil)

	// Then
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.String(), "HTTP/1.1 101 Switching Protocols\r\n"))
	assert.Contains(t, output.String(), "Sec-WebSocket-Accept: s3pPLMBiTxaQ9kYGzzhZRbK+xOo=\r\n")
	assert.True(t, strings.HasSuffix(output.String(), "\r\n\r\n"))
}
