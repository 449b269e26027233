package messages

import (
	"context"
	"errors"
)

// ErrNotAcknowledged is returned when the store accepted the insert request
// but did not acknowledge the write. The text is client-visible in the
// failure envelope's diagnostic field.
var ErrNotAcknowledged = errors.New("Failed to insert document")

// Repository defines persistence for contact submissions.
type Repository interface {
	// Insert persists the message and returns the store-assigned identifier.
	Insert(ctx context.Context, m *Message) (string, error)
}
