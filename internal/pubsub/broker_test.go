package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBroker(t *testing.T) {
	t.Run("publish to subscriber", func(t *testing.T) {
		b := NewBroker[string](nil)
		sub := b.Subscribe(context.Background())

		b.Publish(UpdatedEvent, "5 minutes ago")

		assert.Equal(t, Event[string]{Type: UpdatedEvent, Payload: "5 minutes ago"}, <-sub)
	})

	t.Run("cancel context unsubscribes", func(t *testing.T) {
		b := NewBroker[string](nil)
		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)

		cancel()

		select {
		case _, ok := <-sub:
			assert.False(t, ok)
		case <-time.After(time.Second):
			t.Fatal("subscription not closed")
		}
	})

	t.Run("shutdown closes subscriptions", func(t *testing.T) {
		b := NewBroker[string](nil)
		sub := b.Subscribe(context.Background())

		b.Shutdown()

		_, ok := <-sub
		assert.False(t, ok)

		_, ok = <-b.Subscribe(context.Background())
		assert.False(t, ok)
	})

	t.Run("full subscriber is dropped", func(t *testing.T) {
		b := NewBroker[int](nil)
		sub := b.Subscribe(context.Background())

		for i := 0; i <= subBufferSize; i++ {
			b.Publish(CreatedEvent, i)
		}

		var n int
		for range sub {
			n++
		}
		assert.Equal(t, subBufferSize, n)
	})
}
