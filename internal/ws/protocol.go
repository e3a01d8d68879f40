package ws

import (
	"github.com/mowtheair/jicofo/internal/jibri"
	"github.com/mowtheair/jicofo/internal/stats"
)

type MessageType string

const (
	MsgStats   MessageType = "stats"
	MsgFailure MessageType = "failure"
)

type WSMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

type StatsPayload struct {
	Stats stats.Snapshot `json:"stats"`
}

type FailurePayload struct {
	Kind jibri.Type `json:"kind"`
}
