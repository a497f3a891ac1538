package viewstate

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Launcher runs intent tasks on their own goroutines, all bound to one context.
// Interrupt cancels the tasks started so far; Close also stops new ones and
// waits for running tasks to return.
type Launcher struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    zerolog.Logger

	mu        sync.Mutex
	closed    bool
	gen       context.Context
	genCancel context.CancelFunc
	wg        sync.WaitGroup
}

func NewLauncher(parent context.Context, log zerolog.Logger) *Launcher {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	l := &Launcher{ctx: ctx, cancel: cancel, log: log}
	l.gen, l.genCancel = context.WithCancel(ctx)
	return l
}

// Go starts task. It reports false when the launcher is already closed.
func (l *Launcher) Go(name string, task func(ctx context.Context)) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.log.Debug().Str("intent", name).Msg("launcher closed, dropping intent")
		return false
	}
	ctx := l.gen
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				l.log.Error().Interface("panic", r).Str("intent", name).Msg("intent panicked")
			}
		}()
		task(ctx)
	}()
	return true
}

// Interrupt cancels every task started so far. Later tasks get a fresh context.
func (l *Launcher) Interrupt() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.genCancel()
	l.gen, l.genCancel = context.WithCancel(l.ctx)
}

// Wait blocks until every started task has returned.
func (l *Launcher) Wait() {
	l.wg.Wait()
}

func (l *Launcher) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}
