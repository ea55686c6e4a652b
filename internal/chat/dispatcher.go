package chat

import (
	"context"
	"sync"
)

// Handler はイベント1件を処理する。
type Handler interface {
	Handle(ctx context.Context, ev Event)
}

// Dispatcher はイベントごとにgoroutineを起こしつつ、
// 同一ユーザーのイベントはユーザー別ロックで直列に処理する。
// （遅いカート追加と同時のチェックアウト読み出しの競合を防ぐ）
type Dispatcher struct {
	handler Handler

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
	wg    sync.WaitGroup
}

// DI
func NewDispatcher(h Handler) *Dispatcher {
	return &Dispatcher{
		handler: h,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// Dispatch はイベントを非同期に処理する。別ユーザーのイベントは並行に進む。
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		lock := d.userLock(ev.From().ID)
		lock.Lock()
		defer lock.Unlock()

		d.handler.Handle(ctx, ev)
	}()
}

// Wait は処理中のイベントが全て終わるまで待つ（シャットダウン用）。
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) userLock(userID int64) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[userID] = lock
	}
	return lock
}
