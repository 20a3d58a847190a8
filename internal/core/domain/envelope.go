package domain

import (
	"time"

	"github.com/google/uuid"
)

// Envelope carries the identity and creation time shared by every command
// and query. Messages embed it by value and never mutate it after
// construction.
type Envelope struct {
	// ID uniquely identifies this message instance.
	ID string

	// CreatedAt is the moment the message was constructed.
	CreatedAt time.Time
}

// NewEnvelope creates an envelope with a fresh identifier.
func NewEnvelope() Envelope {
	return Envelope{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}
