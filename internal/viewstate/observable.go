// Package viewstate holds the observable state behind each screen: auth, the
// signed-in user's goals, and the completed-goals projection.
package viewstate

import "sync"

// Observable is a value that notifies subscribers on every change.
//
// Each subscriber sees values one at a time and in version order, and always
// ends on the latest value. Values replaced while a subscriber is still busy
// are collapsed into the newest one. Callbacks run outside the value lock, so
// they may call back into the observable.
type Observable[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
	subs    map[int]*subscriber[T]
	next    int
}

type subscriber[T any] struct {
	fn func(T)

	mu      sync.Mutex
	seen    uint64
	running bool
	removed bool
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial, version: 1, subs: make(map[int]*subscriber[T])}
}

func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

func (o *Observable[T]) Set(v T) {
	o.Update(func(T) T { return v })
}

// Update applies fn to the current value atomically and publishes the result.
func (o *Observable[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	o.value = fn(o.value)
	o.version++
	v := o.value
	subs := o.snapshot()
	o.mu.Unlock()

	for _, sub := range subs {
		o.notify(sub)
	}
	return v
}

// Subscribe delivers the current value immediately and every later one until
// the returned function is called.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscriber[T]{fn: fn}
	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = sub
	o.mu.Unlock()

	o.notify(sub)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()

			sub.mu.Lock()
			sub.removed = true
			sub.mu.Unlock()
		})
	}
}

// notify hands sub the newest value unless another goroutine is already
// delivering to it; that goroutine picks the newer version up before it stops.
func (o *Observable[T]) notify(sub *subscriber[T]) {
	sub.mu.Lock()
	if sub.running {
		sub.mu.Unlock()
		return
	}
	sub.running = true
	for {
		o.mu.Lock()
		v, ver := o.value, o.version
		o.mu.Unlock()

		if sub.removed || ver <= sub.seen {
			sub.running = false
			sub.mu.Unlock()
			return
		}
		sub.seen = ver
		sub.mu.Unlock()

		sub.call(v)

		sub.mu.Lock()
	}
}

// call runs the callback, releasing the subscriber if it panics.
func (sub *subscriber[T]) call(v T) {
	ok := false
	defer func() {
		if !ok {
			sub.mu.Lock()
			sub.running = false
			sub.mu.Unlock()
		}
	}()
	sub.fn(v)
	ok = true
}

func (o *Observable[T]) snapshot() []*subscriber[T] {
	out := make([]*subscriber[T], 0, len(o.subs))
	for _, sub := range o.subs {
		out = append(out, sub)
	}
	return out
}
