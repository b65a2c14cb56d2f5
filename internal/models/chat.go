package models

import "time"

// ChatMessage is one immutable turn of the conversation transcript.
// Messages are append-only; Timestamp is the sole ordering key.
type ChatMessage struct {
	ID        int64     `db:"id"`
	Message   string    `db:"message"`
	IsUser    bool      `db:"is_user"`
	Timestamp time.Time `db:"timestamp"`
}
