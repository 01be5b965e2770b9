package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"multilingual-chatbot/internal/chat"
	repo "multilingual-chatbot/internal/chat/repository"
	"multilingual-chatbot/pkg/log"
)

func newTestRepo(t *testing.T, opt Options) *implRepository {
	t.Helper()
	return New(opt, log.NewNop()).(*implRepository)
}

func TestGetOrCreateSession(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 10, TTL: time.Minute})
	ctx := context.Background()

	t.Run("empty id mints uuid", func(t *testing.T) {
		sess, created, err := r.GetOrCreateSession(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created || len(sess.ID) != 36 {
			t.Errorf("expected new uuid session, got %q created=%v", sess.ID, created)
		}
		if sess.CreatedAt.IsZero() {
			t.Error("expected creation timestamp")
		}
	})

	t.Run("unknown id is adopted", func(t *testing.T) {
		sess, created, err := r.GetOrCreateSession(ctx, "client-chosen")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created || sess.ID != "client-chosen" {
			t.Errorf("expected adopted session, got %q created=%v", sess.ID, created)
		}
	})

	t.Run("known id is returned", func(t *testing.T) {
		_, created, _ := r.GetOrCreateSession(ctx, "client-chosen")
		if created {
			t.Error("expected existing session")
		}
	})
}

func TestAppendAndHistory(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 10, TTL: time.Minute})
	ctx := context.Background()

	if err := r.AppendTurn(ctx, "missing", chat.Turn{}); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := r.History(ctx, "missing"); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	sess, _, _ := r.GetOrCreateSession(ctx, "")
	const n = 5
	for i := 0; i < n; i++ {
		if err := r.AppendTurn(ctx, sess.ID, chat.Turn{UserInput: fmt.Sprintf("u%d", i)}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns, err := r.History(ctx, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != n {
		t.Fatalf("expected %d turns, got %d", n, len(turns))
	}
	for i, turn := range turns {
		if turn.UserInput != fmt.Sprintf("u%d", i) {
			t.Errorf("turn %d out of order: %q", i, turn.UserInput)
		}
	}

	turns[0].UserInput = "mutated"
	again, _ := r.History(ctx, sess.ID)
	if again[0].UserInput != "u0" {
		t.Error("history must return a copy")
	}
}

func TestDeleteSession(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 10, TTL: time.Minute})
	ctx := context.Background()

	sess, _, _ := r.GetOrCreateSession(ctx, "")
	_ = r.AppendTurn(ctx, sess.ID, chat.Turn{UserInput: "hi"})

	if err := r.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("second delete should succeed: %v", err)
	}
	if err := r.DeleteSession(ctx, "unknown-id"); err != nil {
		t.Fatalf("unknown delete should succeed: %v", err)
	}
	if _, err := r.History(ctx, sess.ID); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestExpiry(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 10, TTL: 50 * time.Millisecond})
	ctx := context.Background()

	sess, _, _ := r.GetOrCreateSession(ctx, "")
	time.Sleep(120 * time.Millisecond)

	if _, err := r.History(ctx, sess.ID); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("expected session to expire, got %v", err)
	}
}

func TestCapacity(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 2, TTL: time.Minute})
	ctx := context.Background()

	_, _, _ = r.GetOrCreateSession(ctx, "a")
	_, _, _ = r.GetOrCreateSession(ctx, "b")
	_, _ = r.History(ctx, "a")
	_, _, _ = r.GetOrCreateSession(ctx, "c")

	if _, err := r.History(ctx, "b"); !errors.Is(err, repo.ErrSessionNotFound) {
		t.Errorf("least recently used session should be evicted, got %v", err)
	}
	if _, err := r.History(ctx, "a"); err != nil {
		t.Errorf("recently used session should survive, got %v", err)
	}
}

func TestConcurrentSessionsIsolated(t *testing.T) {
	r := newTestRepo(t, Options{Capacity: 100, TTL: time.Minute})
	ctx := context.Background()

	var wg sync.WaitGroup
	for s := 0; s < 8; s++ {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", s)
			_, _, _ = r.GetOrCreateSession(ctx, id)
			for i := 0; i < 10; i++ {
				_ = r.AppendTurn(ctx, id, chat.Turn{UserInput: id})
			}
		}(s)
	}
	wg.Wait()

	for s := 0; s < 8; s++ {
		id := fmt.Sprintf("s%d", s)
		turns, err := r.History(ctx, id)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if len(turns) != 10 {
			t.Errorf("%s: expected 10 turns, got %d", id, len(turns))
		}
		for _, turn := range turns {
			if turn.UserInput != id {
				t.Errorf("%s: saw turn from %s", id, turn.UserInput)
			}
		}
	}
}
