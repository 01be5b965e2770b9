package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"multilingual-chatbot/internal/chat"
	"multilingual-chatbot/internal/chat/repository"
	"multilingual-chatbot/pkg/log"
)

// Options sizes the in-process store.
type Options struct {
	Capacity int
	TTL      time.Duration
}

type implRepository struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *chat.Session]
	l        log.Logger
	now      func() time.Time
	newID    func() string
}

// New creates an in-process session store. Sessions expire TTL after their
// last use; the least recently used one is dropped once Capacity is reached.
func New(opt Options, l log.Logger) repository.Repository {
	if opt.Capacity <= 0 {
		opt.Capacity = 10000
	}
	return &implRepository{
		sessions: expirable.NewLRU[string, *chat.Session](opt.Capacity, nil, opt.TTL),
		l:        l,
		now:      time.Now,
		newID:    newSessionID,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/memory.%s", method)
}
