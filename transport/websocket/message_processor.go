package websocket

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/quiz"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
)

const (
	opCodeContinuation byte = 0x0
	opCodeText         byte = 0x1
	opCodeClose        byte = 0x8
	opCodePing         byte = 0x9
	opCodePong         byte = 0xA

	closeProtocolError uint16 = 1002

	// maxPayloadSize bounds a single client frame.
	maxPayloadSize = 1 << 20
)

var (
	errConnectionClosed = errors.New("connection closed by client")
	errFrameTooLarge    = errors.New("frame payload is too large")
	errProtocol         = errors.New("websocket protocol violation")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin    bool
	isMasked bool
	opCode   byte
	payload  []byte
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses. Requests fill Player plus the action argument.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`

	Quiz       *entity.Snapshot    `json:"quiz,omitempty"`
	Outcome    quiz.Outcome        `json:"outcome,omitempty"`
	Resolution *entity.Resolution  `json:"resolution,omitempty"`
	Hint       *usecase.Hint       `json:"hint,omitempty"`
	Pick       *usecase.PickResult `json:"pick,omitempty"`

	Guess string          `json:"guess,omitempty"`
	Kind  entity.HintKind `json:"kind,omitempty"`
	Mesh  string          `json:"mesh,omitempty"`

	Error string `json:"error,omitempty"`
}

func (that *Server) sendMessage(bufrw *bufio.ReadWriter, action string, payload Payload) error {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opCodeText, payload: responseBytes}); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

// writeFrame writes an unmasked server frame and flushes it.
func writeFrame(writer *bufio.Writer, frameData frame) error {
	header := make([]byte, 2, 10)
	header[0] = frameData.opCode
	if frameData.isFin {
		header[0] |= 0x80
	}

	length := uint64(len(frameData.payload))

	switch {
	case length < 126:
		header[1] = byte(length)
	case length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, length)
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}

	if _, err := writer.Write(frameData.payload); err != nil {
		return fmt.Errorf("failed to write frame payload: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readRequest returns the next text message. Pings are answered in place, fragments are joined.
// Unmasked frames and continuations outside a fragmented message fail the connection.
func (that *Server) readRequest(bufrw *bufio.ReadWriter) ([]byte, error) {
	var message []byte
	inProgress := false

	for {
		f, err := readFrame(bufrw.Reader)
		if err != nil {
			return nil, err
		}

		if !f.isMasked {
			return nil, failConnection(bufrw.Writer, "client frame is not masked")
		}

		switch f.opCode {
		case opCodeClose:
			_ = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opCodeClose})
			return nil, errConnectionClosed
		case opCodePing:
			if err = writeFrame(bufrw.Writer, frame{isFin: true, opCode: opCodePong, payload: f.payload}); err != nil {
				return nil, err
			}
			continue
		case opCodePong:
			continue
		case opCodeContinuation:
			if !inProgress {
				return nil, failConnection(bufrw.Writer, "continuation without a message in progress")
			}
		default:
			if inProgress {
				return nil, failConnection(bufrw.Writer, "new message before the previous one finished")
			}
		}

		inProgress = !f.isFin
		message = append(message, f.payload...)
		if len(message) > maxPayloadSize {
			return nil, errFrameTooLarge
		}

		if f.isFin {
			return message, nil
		}
	}
}

// failConnection sends a protocol error close frame and reports the reason.
func failConnection(writer *bufio.Writer, reason string) error {
	payload := binary.BigEndian.AppendUint16(nil, closeProtocolError)
	_ = writeFrame(writer, frame{isFin: true, opCode: opCodeClose, payload: payload})

	return fmt.Errorf("%w: %s", errProtocol, reason)
}

func readFrame(reader io.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if size > maxPayloadSize {
		return frame{}, errFrameTooLarge
	}

	mask, err := readMask(reader, header[1]>>7)
	if err != nil {
		return frame{}, err
	}

	payload, err := readData(reader, size, mask)
	if err != nil {
		return frame{}, err
	}

	return frame{
		isFin:    header[0]>>7 == 1,
		isMasked: mask != nil,
		opCode:   header[0] & 0x0f,
		payload:  payload,
	}, nil
}

func readPayloadLength(reader io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}
		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

func readMask(reader io.Reader, maskBit byte) ([]byte, error) {
	if maskBit == 0 {
		return nil, nil
	}

	mask := make([]byte, 4)
	if _, err := io.ReadFull(reader, mask); err != nil {
		return nil, fmt.Errorf("failed to read mask: %w", err)
	}

	return mask, nil
}

func readData(reader io.Reader, size uint64, mask []byte) ([]byte, error) {
	payload := make([]byte, size)
	if _, err := io.ReadFull(reader, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if mask != nil {
		for i := range payload {
			payload[i] ^= mask[i%4]
		}
	}

	return payload, nil
}
