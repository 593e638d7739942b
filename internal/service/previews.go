package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/baanpim/hotel-assistant/internal/model"
)

// PreviewStore holds transient attachment previews so the client can render
// an image before the turn completes. A pending preview is released when it
// is superseded by a newer one; committing transfers ownership to the
// timeline message that references it.
type PreviewStore struct {
	mu       sync.Mutex
	previews map[string]model.Attachment
	pending  string
}

// NewPreviewStore creates an empty preview store.
func NewPreviewStore() *PreviewStore {
	return &PreviewStore{
		previews: make(map[string]model.Attachment),
	}
}

// Put registers an attachment preview and returns its reference ID. Any
// still-pending preview is released first.
func (s *PreviewStore) Put(att model.Attachment) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != "" {
		delete(s.previews, s.pending)
	}

	id := uuid.Must(uuid.NewV7()).String()
	s.previews[id] = att
	s.pending = id
	return id
}

// Commit marks a pending preview as submitted. The preview stays readable
// because a timeline message now points at it.
func (s *PreviewStore) Commit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == id {
		s.pending = ""
	}
}

// Release drops a preview reference.
func (s *PreviewStore) Release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.previews, id)
	if s.pending == id {
		s.pending = ""
	}
}

// Get returns the attachment behind a preview reference.
func (s *PreviewStore) Get(id string) (model.Attachment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	att, ok := s.previews[id]
	return att, ok
}
