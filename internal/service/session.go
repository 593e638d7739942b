package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/baanpim/hotel-assistant/internal/erp"
	"github.com/baanpim/hotel-assistant/internal/llm"
	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/logger"
	"github.com/baanpim/hotel-assistant/pkg/metrics"
)

// welcomeText greets the user when a session starts.
const welcomeText = "สวัสดีครับ! ผมคือผู้ช่วยจัดการโรงแรม AI ของคุณ\n\nพิมพ์ \"เมนู\" เพื่อดูคำสั่งทั้งหมด หรือพิมพ์คำสั่งอื่นๆ ได้เลยครับ"

// ChatSession bundles the per-session state: the orchestrator, its timeline
// and the attachment preview store.
type ChatSession struct {
	ID           string
	CreatedAt    time.Time
	Orchestrator *Orchestrator
	Previews     *PreviewStore
}

// SessionService creates and looks up chat sessions. Each session owns one
// conversation handle for its whole lifetime; sessions are independent and
// discarded when the process exits.
type SessionService struct {
	llmClient llm.Client
	gateway   erp.Gateway
	logger    *logger.Logger

	mu       sync.RWMutex
	sessions map[string]*ChatSession
}

// NewSessionService creates a session service.
func NewSessionService(llmClient llm.Client, gateway erp.Gateway, log *logger.Logger) *SessionService {
	return &SessionService{
		llmClient: llmClient,
		gateway:   gateway,
		logger:    log,
		sessions:  make(map[string]*ChatSession),
	}
}

// Create starts a new session: it allocates the conversation handle, builds
// an empty timeline and appends the welcome message.
func (s *SessionService) Create(ctx context.Context) (*ChatSession, error) {
	handle, err := s.llmClient.StartSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start conversation: %w", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	timeline := NewTimeline()
	previews := NewPreviewStore()
	executor := NewExecutor(s.gateway, s.logger)

	sess := &ChatSession{
		ID:           id,
		CreatedAt:    time.Now(),
		Orchestrator: NewOrchestrator(id, handle, executor, s.gateway, timeline, previews, s.logger),
		Previews:     previews,
	}

	welcome := newMessage(id, model.SenderAI)
	welcome.Text = welcomeText
	timeline.Append(welcome)

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	metrics.SessionsTotal.Inc()
	metrics.SessionsActive.Inc()

	return sess, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(id string) (*ChatSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return sess, nil
}
