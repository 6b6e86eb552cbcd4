package chat

import (
	"context"
	"sync"
)

// MainLoop is a single-consumer task queue standing in for a host's main
// thread. Tasks run in submission order on the goroutine calling Run.
type MainLoop struct {
	tasks   chan func()
	stopped chan struct{}

	mu       sync.RWMutex
	closed   bool
	stopOnce sync.Once
}

func NewMainLoop(size int) *MainLoop {
	return &MainLoop{
		tasks:   make(chan func(), size),
		stopped: make(chan struct{}),
	}
}

// Execute queues task. Tasks queued after Close, or while the loop has
// stopped, are dropped.
func (m *MainLoop) Execute(task func()) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	select {
	case m.tasks <- task:
	case <-m.stopped:
	}
}

// Run drains the queue until ctx is done or Close was called and every
// queued task has run.
func (m *MainLoop) Run(ctx context.Context) error {
	defer m.stopOnce.Do(func() { close(m.stopped) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task, ok := <-m.tasks:
			if !ok {
				return nil
			}
			task()
		}
	}
}

// Close stops accepting tasks. Run returns once the queue is empty.
func (m *MainLoop) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.tasks)
	}
}
