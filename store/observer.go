package store

import "sync"

// observers is a registry of change-notification callbacks shared by the
// storage backends. Callbacks fire after a successful write; no ordering is
// guaranteed.
type observers struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func (o *observers) subscribe(fn func()) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subs == nil {
		o.subs = make(map[int]func())
	}

	id := o.next
	o.next++
	o.subs[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		delete(o.subs, id)
	}
}

func (o *observers) notify() {
	o.mu.Lock()

	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}

	o.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
