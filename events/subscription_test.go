package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionManager_EmitReachesAllSubscribers(t *testing.T) {
	sm := NewSubscriptionManager()

	subs := make([]ISubscription, 5)
	for i := range subs {
		subs[i] = sm.Subscribe()
	}

	sm.Emit(context.Background())

	for i, sub := range subs {
		select {
		case <-sub.Chan():
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive the notification", i)
		}
	}
}

func TestSubscription_CancelClosesChannel(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()

	sub.Cancel()
	sub.Cancel() // repeated cancel is a no-op

	_, open := <-sub.Chan()
	assert.False(t, open, "cancelled subscription must close its channel")

	// Emitting after cancellation must not signal or panic
	sm.Emit(context.Background())
}

func TestSubscriptionManager_PendingEmitsCollapse(t *testing.T) {
	sm := NewSubscriptionManager()
	sub := sm.Subscribe()
	defer sub.Cancel()

	ctx := context.Background()
	sm.Emit(ctx)
	sm.Emit(ctx)
	sm.Emit(ctx)

	<-sub.Chan()
	select {
	case <-sub.Chan():
		t.Fatal("undelivered emits must collapse into one pending signal")
	default:
	}
}
