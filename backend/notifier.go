package backend

import (
	"context"
	"slices"
	"sync"

	"gymnexa/models"
)

// Notifier fans auth-state changes out to registered listeners.
// The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	next      int
	listeners map[int]AuthStateListener
}

// Subscribe registers fn and returns its unsubscribe function.
func (n *Notifier) Subscribe(fn AuthStateListener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.listeners == nil {
		n.listeners = make(map[int]AuthStateListener)
	}
	id := n.next
	n.next++
	n.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

// Notify calls every listener in registration order outside the lock.
func (n *Notifier) Notify(ctx context.Context, uid string, id *models.Identity) {
	n.mu.Lock()
	ids := make([]int, 0, len(n.listeners))
	for k := range n.listeners {
		ids = append(ids, k)
	}
	fns := make([]AuthStateListener, 0, len(ids))
	slices.Sort(ids)
	for _, k := range ids {
		fns = append(fns, n.listeners[k])
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, uid, id)
	}
}

