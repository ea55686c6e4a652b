package chat_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"app/internal/chat"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	mu      sync.Mutex
	delay   time.Duration
	order   []string
	running int
	maxSeen int
}

func (h *recordingHandler) Handle(ctx context.Context, ev chat.Event) {
	h.mu.Lock()
	h.running++
	if h.running > h.maxSeen {
		h.maxSeen = h.running
	}
	h.mu.Unlock()

	time.Sleep(h.delay)

	h.mu.Lock()
	h.running--
	if cmd, ok := ev.(chat.Command); ok {
		h.order = append(h.order, cmd.Name)
	}
	h.mu.Unlock()
}

// 同一ユーザーのイベントは投入順に直列処理される
func TestDispatcher_SameUserIsSerialized(t *testing.T) {
	h := &recordingHandler{delay: 10 * time.Millisecond}
	d := chat.NewDispatcher(h)

	u := chat.User{ID: 1}
	d.Dispatch(context.Background(), chat.Command{User: u, Name: "first"})
	// 先行イベントがロックを取るまで少しだけ待つ
	time.Sleep(2 * time.Millisecond)
	d.Dispatch(context.Background(), chat.Command{User: u, Name: "second"})
	d.Wait()

	assert.Equal(t, []string{"first", "second"}, h.order)
}

// 別ユーザーのイベントは並行に処理される
func TestDispatcher_DistinctUsersRunConcurrently(t *testing.T) {
	h := &recordingHandler{delay: 50 * time.Millisecond}
	d := chat.NewDispatcher(h)

	d.Dispatch(context.Background(), chat.Command{User: chat.User{ID: 1}, Name: "a"})
	d.Dispatch(context.Background(), chat.Command{User: chat.User{ID: 2}, Name: "b"})
	d.Wait()

	assert.Equal(t, 2, h.maxSeen)
}

func TestEventFrom(t *testing.T) {
	u := chat.User{ID: 7}

	var ev chat.Event = chat.SessionStart{User: u}
	assert.Equal(t, u, ev.From())

	ev = chat.PaymentConfirmed{User: u, Payload: "tok"}
	assert.Equal(t, u, ev.From())
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Taro Yamada", chat.User{ID: 1, FirstName: "Taro", LastName: "Yamada"}.DisplayName())
	assert.Equal(t, "Taro", chat.User{ID: 1, FirstName: "Taro"}.DisplayName())
	assert.Equal(t, "taro99", chat.User{ID: 1, Username: "taro99"}.DisplayName())
	assert.Equal(t, "user:1", chat.User{ID: 1}.DisplayName())
}
