// Package service provides business logic for the hotel assistant.
package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/metrics"
)

// Timeline is the ordered, append-only sequence of messages constituting the
// visible conversation. Messages are never reordered, mutated or deleted, so
// snapshots are safe to read concurrently with appends.
type Timeline struct {
	mu       sync.RWMutex
	messages []model.Message
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Append adds a message to the end of the timeline.
func (t *Timeline) Append(msg model.Message) {
	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()

	metrics.MessagesTotal.WithLabelValues(string(msg.Sender)).Inc()
}

// Messages returns a snapshot of the timeline.
func (t *Timeline) Messages() []model.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages in the timeline.
func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// newMessage creates a timeline message with a fresh ID.
func newMessage(sessionID string, sender model.Sender) model.Message {
	return model.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		SessionID: sessionID,
		Sender:    sender,
		CreatedAt: time.Now(),
	}
}
