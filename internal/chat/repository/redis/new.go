package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"multilingual-chatbot/internal/chat/repository"
	"multilingual-chatbot/pkg/log"
)

// Options configures the Redis-backed store.
type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	KeyPrefix   string
	TTL         time.Duration
}

type implRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	l      log.Logger
	now    func() time.Time
	newID  func() string
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opt Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opt.Addr,
		Password:    opt.Password,
		DB:          opt.DB,
		DialTimeout: opt.DialTimeout,
	})

	pong, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	if pong != "PONG" {
		_ = client.Close()
		return nil, fmt.Errorf("expected PONG, got %s", pong)
	}
	return client, nil
}

// New creates a Redis-backed session store on top of client.
func New(client *redis.Client, opt Options, l log.Logger) repository.Repository {
	if client == nil {
		panic("chat/repository/redis: client is required")
	}
	if opt.KeyPrefix == "" {
		opt.KeyPrefix = "chat"
	}
	return &implRepository{
		client: client,
		prefix: opt.KeyPrefix,
		ttl:    opt.TTL,
		l:      l,
		now:    time.Now,
		newID:  newSessionID,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/redis.%s", method)
}

func (r *implRepository) metaKey(id string) string {
	return fmt.Sprintf("%s:session:%s:meta", r.prefix, id)
}

func (r *implRepository) turnsKey(id string) string {
	return fmt.Sprintf("%s:session:%s:turns", r.prefix, id)
}
