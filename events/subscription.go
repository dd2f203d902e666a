// Package events carries state-change notifications from the dashboard
// controller to its observers (render layers, tests). Notifications are
// edge-triggered signals with no payload: a woken observer reads the
// current state from the controller.
package events

import (
	"context"
	"sync"
)

// ISubscription is one observer's handle on a notification stream
type ISubscription interface {
	// Chan returns the channel signalled after each state transition.
	// Signals pending behind an unread one collapse into it.
	Chan() <-chan struct{}
	// Cancel unsubscribes and closes the channel. Safe for repeated calls
	Cancel()
}

type Subscription struct {
	ch   chan struct{}
	mgr  *SubscriptionManager
	once sync.Once
}

func (s *Subscription) Chan() <-chan struct{} { return s.ch }

func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.mgr.unsubscribe(s.ch)
	})
}

// SubscriptionManager fans one event source out to any number of
// subscribers. Emitting never blocks on a slow subscriber.
type SubscriptionManager struct {
	mu          sync.RWMutex
	subscribers map[chan struct{}]struct{}
}

func NewSubscriptionManager() *SubscriptionManager {
	return &SubscriptionManager{
		subscribers: make(map[chan struct{}]struct{}),
	}
}

// Subscribe registers a new observer. The returned subscription must be
// cancelled when the observer goes away, or its channel leaks.
func (m *SubscriptionManager) Subscribe() ISubscription {
	ch := make(chan struct{}, 1)

	m.mu.Lock()
	m.subscribers[ch] = struct{}{}
	m.mu.Unlock()

	return &Subscription{ch: ch, mgr: m}
}

func (m *SubscriptionManager) unsubscribe(ch chan struct{}) {
	m.mu.Lock()
	if _, ok := m.subscribers[ch]; ok {
		delete(m.subscribers, ch)
		close(ch)
	}
	m.mu.Unlock()
}

// Emit signals every subscriber. A subscriber with a signal already
// pending is skipped rather than blocked on.
func (m *SubscriptionManager) Emit(ctx context.Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for sub := range m.subscribers {
		select {
		case <-ctx.Done():
			return
		case sub <- struct{}{}:
		default:
			// Pending signal already covers this state change
		}
	}
}
