package memory

import (
	"context"

	"github.com/google/uuid"

	"multilingual-chatbot/internal/chat"
	repo "multilingual-chatbot/internal/chat/repository"
)

func newSessionID() string {
	return uuid.NewString()
}

// GetOrCreateSession returns a copy of the session, creating it when needed.
func (r *implRepository) GetOrCreateSession(ctx context.Context, id string) (chat.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if sess, ok := r.touch(id); ok {
			return copySession(sess), false, nil
		}
	} else {
		id = r.newID()
	}

	sess := &chat.Session{ID: id, CreatedAt: r.now().UTC()}
	r.sessions.Add(id, sess)
	r.l.Debugf(ctx, "%s: created session %s", r.dsn("GetOrCreateSession"), id)
	return copySession(sess), true, nil
}

// AppendTurn adds turn to the end of the session transcript.
func (r *implRepository) AppendTurn(ctx context.Context, id string, turn chat.Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.touch(id)
	if !ok {
		return repo.ErrSessionNotFound
	}
	sess.Turns = append(sess.Turns, turn)
	return nil
}

// History returns the transcript in append order.
func (r *implRepository) History(ctx context.Context, id string) ([]chat.Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.touch(id)
	if !ok {
		return nil, repo.ErrSessionNotFound
	}
	return copySession(sess).Turns, nil
}

// DeleteSession removes the session. Unknown ids are a no-op.
func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions.Remove(id)
	return nil
}

// touch looks the session up and renews its expiry.
func (r *implRepository) touch(id string) (*chat.Session, bool) {
	sess, ok := r.sessions.Get(id)
	if !ok {
		return nil, false
	}
	r.sessions.Add(id, sess)
	return sess, true
}

func copySession(s *chat.Session) chat.Session {
	out := *s
	out.Turns = make([]chat.Turn, len(s.Turns))
	copy(out.Turns, s.Turns)
	return out
}
