package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Message is one conversation turn as stored in history. Role is "user"
// or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// History keeps per-user conversation transcripts between chat turns.
type History interface {
	Append(ctx context.Context, userID int, msg Message) error
	Messages(ctx context.Context, userID int) ([]Message, error)
	Clear(ctx context.Context, userID int) error
}

// MemoryHistory is the in-process fallback used when Redis is not
// configured, and in tests.
type MemoryHistory struct {
	mu     sync.Mutex
	byUser map[int][]Message
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{byUser: make(map[int][]Message)}
}

func (h *MemoryHistory) Append(_ context.Context, userID int, msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.byUser[userID] = append(h.byUser[userID], msg)
	return nil
}

func (h *MemoryHistory) Messages(_ context.Context, userID int) ([]Message, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message(nil), h.byUser[userID]...), nil
}

func (h *MemoryHistory) Clear(_ context.Context, userID int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.byUser, userID)
	return nil
}

// maxHistoryLen caps the per-user transcript so a long-running
// conversation cannot grow the prompt without bound.
const maxHistoryLen = 200

// RedisHistory stores transcripts as one Redis list per user, capped to
// the most recent maxHistoryLen entries.
type RedisHistory struct {
	rdb *redis.Client
}

func NewRedisHistory(rdb *redis.Client) *RedisHistory {
	return &RedisHistory{rdb: rdb}
}

func (h *RedisHistory) key(userID int) string {
	return "fanmate:chat:" + strconv.Itoa(userID)
}

func (h *RedisHistory) Append(ctx context.Context, userID int, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	pipe := h.rdb.Pipeline()
	pipe.RPush(ctx, h.key(userID), data)
	pipe.LTrim(ctx, h.key(userID), -maxHistoryLen, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending chat history: %w", err)
	}
	return nil
}

func (h *RedisHistory) Messages(ctx context.Context, userID int) ([]Message, error) {
	raw, err := h.rdb.LRange(ctx, h.key(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading chat history: %w", err)
	}

	out := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (h *RedisHistory) Clear(ctx context.Context, userID int) error {
	if err := h.rdb.Del(ctx, h.key(userID)).Err(); err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	return nil
}
