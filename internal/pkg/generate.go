package pkg

import (
	"crypto/sha1" //nolint: gosec // mandated by RFC 6455
	"encoding/base64"

	"github.com/google/uuid"
)

const websocketGUID = "258EAFA5-E914-47DA-95CA-C5AB0DC85B11"

func GenerateNewSessionID() string {
	return uuid.NewString()
}

func GenerateQuizID() string {
	return uuid.NewString()
}

// GenerateAcceptKey - computes Sec-WebSocket-Accept for the client key.
func GenerateAcceptKey(key string) string {
	hash := sha1.Sum([]byte(key + websocketGUID)) //nolint: gosec // mandated by RFC 6455
	return base64.StdEncoding.EncodeToString(hash[:])
}
