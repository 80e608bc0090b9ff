package storage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/julianstephens/ibadah/internal/constants"
	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/logger"
)

// ErrWriterClosed is returned by Flush after Close.
var ErrWriterClosed = errors.New("writer closed")

type op struct {
	key    string
	value  string
	remove bool
	done   chan struct{} // set for flush barriers
}

// Writer applies writes to a kv.Store in the background, in the order they
// were queued. Callers never wait for a write; failures are logged and
// counted, never retried.
type Writer struct {
	store kv.Store
	queue chan op

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	failures atomic.Int64
}

// NewWriter starts the background goroutine draining into store.
func NewWriter(store kv.Store) *Writer {
	w := &Writer{
		store: store,
		queue: make(chan op, constants.WriterQueueSize),
	}
	w.wg.Add(1)
	go w.run()
	return w
}

func (w *Writer) run() {
	defer w.wg.Done()
	for o := range w.queue {
		if o.done != nil {
			close(o.done)
			continue
		}
		w.apply(o)
	}
}

func (w *Writer) apply(o op) {
	ctx, cancel := context.WithTimeout(context.Background(), constants.WriterFlushTimeout)
	defer cancel()

	var err error
	if o.remove {
		err = w.store.Remove(ctx, o.key)
	} else {
		err = w.store.Set(ctx, o.key, o.value)
	}
	if err != nil {
		w.failures.Add(1)
		logger.Error("Persisting failed", "key", o.key, "remove", o.remove, "error", err)
	}
}

func (w *Writer) enqueue(o op) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return false
	}
	w.queue <- o
	return true
}

// Set queues a write of value under key.
func (w *Writer) Set(key, value string) {
	if !w.enqueue(op{key: key, value: value}) {
		logger.Warn("Write dropped after close", "key", key)
	}
}

// Remove queues deletion of key.
func (w *Writer) Remove(key string) {
	if !w.enqueue(op{key: key, remove: true}) {
		logger.Warn("Remove dropped after close", "key", key)
	}
}

// Flush blocks until every write queued before the call has been applied.
func (w *Writer) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if !w.enqueue(op{done: done}) {
		return ErrWriterClosed
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failures reports how many writes have failed since start.
func (w *Writer) Failures() int64 {
	return w.failures.Load()
}

// Close drains the queue and stops the goroutine. It does not close the
// underlying store.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()

	w.wg.Wait()
	return nil
}
