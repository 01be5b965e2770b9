package usecase

import (
	"context"
	"sync"
	"time"

	"multilingual-chatbot/internal/chat"
	"multilingual-chatbot/internal/chat/repository"
	"multilingual-chatbot/internal/chat/repository/memory"
	"multilingual-chatbot/internal/orchestrator"
	"multilingual-chatbot/pkg/llmprovider"
	"multilingual-chatbot/pkg/log"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

// mockGenerator answers every prompt with reply, or fails with err.
type mockGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	delay   time.Duration
	prompts []string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, req.Prompt)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.reply}, nil
}

func (m *mockGenerator) lastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// failingRepo wraps a real repository and fails selected calls.
type failingRepo struct {
	repository.Repository
	appendErr  error
	getErr     error
	deleteErr  error
	historyErr error
}

func (r *failingRepo) GetOrCreateSession(ctx context.Context, id string) (chat.Session, bool, error) {
	if r.getErr != nil {
		return chat.Session{}, false, r.getErr
	}
	return r.Repository.GetOrCreateSession(ctx, id)
}

func (r *failingRepo) AppendTurn(ctx context.Context, id string, turn chat.Turn) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	return r.Repository.AppendTurn(ctx, id, turn)
}

func (r *failingRepo) History(ctx context.Context, id string) ([]chat.Turn, error) {
	if r.historyErr != nil {
		return nil, r.historyErr
	}
	return r.Repository.History(ctx, id)
}

func (r *failingRepo) DeleteSession(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	return r.Repository.DeleteSession(ctx, id)
}

// blockingDeleteRepo pauses DeleteSession until release is closed.
type blockingDeleteRepo struct {
	repository.Repository
	deleting chan struct{}
	release  chan struct{}
}

func (r *blockingDeleteRepo) DeleteSession(ctx context.Context, id string) error {
	close(r.deleting)
	<-r.release
	return r.Repository.DeleteSession(ctx, id)
}

// recordingMetrics counts calls.
type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
	resets   int
	created  int
}

func (m *recordingMetrics) ObserveTurn(mode, outcome string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) IncReset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
}

func (m *recordingMetrics) IncSessionCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func newMemoryRepo() repository.Repository {
	return memory.New(memory.Options{Capacity: 100, TTL: time.Minute}, &mockLogger{})
}

func newPool(model *orchestrator.ModelConfig) *orchestrator.Pool {
	return orchestrator.NewPool(&mockLogger{}, orchestrator.PoolConfig{
		Capacity:    100,
		TTL:         time.Minute,
		MemoryTurns: 10,
		Model:       model,
	})
}
