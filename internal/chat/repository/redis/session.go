package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"multilingual-chatbot/internal/chat"
	repo "multilingual-chatbot/internal/chat/repository"
)

func newSessionID() string {
	return uuid.NewString()
}

// GetOrCreateSession loads the session or creates its meta key.
// Creation uses SET NX so concurrent callers agree on one CreatedAt.
func (r *implRepository) GetOrCreateSession(ctx context.Context, id string) (chat.Session, bool, error) {
	if id == "" {
		id = r.newID()
	}

	createdAt := r.now().UTC()
	ok, err := r.client.SetNX(ctx, r.metaKey(id), createdAt.Format(time.RFC3339Nano), r.ttl).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: setnx %s: %v", r.dsn("GetOrCreateSession"), id, err)
		return chat.Session{}, false, repo.ErrFailedToGet
	}
	if ok {
		r.l.Debugf(ctx, "%s: created session %s", r.dsn("GetOrCreateSession"), id)
		return chat.Session{ID: id, Turns: []chat.Turn{}, CreatedAt: createdAt}, true, nil
	}

	sess, err := r.load(ctx, id)
	if err != nil {
		return chat.Session{}, false, err
	}
	return sess, false, nil
}

// AppendTurn pushes turn onto the session list inside a WATCH transaction on
// the meta key, so a concurrent delete cannot leave orphaned turns.
func (r *implRepository) AppendTurn(ctx context.Context, id string, turn chat.Turn) error {
	payload, err := encodeTurn(turn)
	if err != nil {
		r.l.Errorf(ctx, "%s: encode: %v", r.dsn("AppendTurn"), err)
		return repo.ErrFailedToAppend
	}

	metaKey, turnsKey := r.metaKey(id), r.turnsKey(id)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, metaKey).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return repo.ErrSessionNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, turnsKey, payload)
			r.expire(ctx, pipe, metaKey, turnsKey)
			return nil
		})
		return err
	}, metaKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrSessionNotFound):
		return repo.ErrSessionNotFound
	default:
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("AppendTurn"), id, err)
		return repo.ErrFailedToAppend
	}
}

// History returns the transcript in append order.
func (r *implRepository) History(ctx context.Context, id string) ([]chat.Turn, error) {
	sess, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Turns, nil
}

// DeleteSession removes both session keys. Unknown ids are a no-op.
func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.metaKey(id), r.turnsKey(id)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("DeleteSession"), id, err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// load reads meta and turns in one round trip and renews both TTLs.
func (r *implRepository) load(ctx context.Context, id string) (chat.Session, error) {
	metaKey, turnsKey := r.metaKey(id), r.turnsKey(id)

	var (
		metaCmd  *redis.StringCmd
		turnsCmd *redis.StringSliceCmd
	)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		metaCmd = pipe.Get(ctx, metaKey)
		turnsCmd = pipe.LRange(ctx, turnsKey, 0, -1)
		r.expire(ctx, pipe, metaKey, turnsKey)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("load"), id, err)
		return chat.Session{}, repo.ErrFailedToGet
	}

	raw, err := metaCmd.Result()
	if errors.Is(err, redis.Nil) {
		return chat.Session{}, repo.ErrSessionNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: meta %s: %v", r.dsn("load"), id, err)
		return chat.Session{}, repo.ErrFailedToGet
	}

	createdAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		r.l.Warnf(ctx, "%s: bad created_at for %s: %v", r.dsn("load"), id, err)
	}

	items := turnsCmd.Val()
	turns := make([]chat.Turn, 0, len(items))
	for _, item := range items {
		turn, err := decodeTurn(item)
		if err != nil {
			r.l.Errorf(ctx, "%s: decode turn of %s: %v", r.dsn("load"), id, err)
			return chat.Session{}, repo.ErrFailedToGet
		}
		turns = append(turns, turn)
	}

	return chat.Session{ID: id, Turns: turns, CreatedAt: createdAt}, nil
}

func (r *implRepository) expire(ctx context.Context, pipe redis.Pipeliner, keys ...string) {
	if r.ttl <= 0 {
		return
	}
	for _, k := range keys {
		pipe.Expire(ctx, k, r.ttl)
	}
}
