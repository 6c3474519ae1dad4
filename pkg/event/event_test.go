package event_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vinayak/pkg/event"
)

func TestFireDeliversToAllListeners(t *testing.T) {
	defer event.Flush()

	var got []interface{}
	event.Listen("order.placed", func(p interface{}) { got = append(got, p) })
	event.Listen("order.placed", func(p interface{}) { got = append(got, p) })

	event.Fire("order.placed", "payload")

	require.Len(t, got, 2)
	assert.Equal(t, "payload", got[0])
}

func TestFireOnlyReachesMatchingEvent(t *testing.T) {
	defer event.Flush()

	called := false
	event.Listen("product.created", func(interface{}) { called = true })

	event.Fire("order.placed", nil)
	assert.False(t, called)
}

func TestFireAsyncDelivers(t *testing.T) {
	defer event.Flush()

	var wg sync.WaitGroup
	wg.Add(1)
	var got interface{}
	event.Listen("product.created", func(p interface{}) {
		got = p
		wg.Done()
	})

	event.FireAsync("product.created", 42)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async listener was never invoked")
	}
	assert.Equal(t, 42, got)
}

func TestFlushRemovesListeners(t *testing.T) {
	called := false
	event.Listen("order.placed", func(interface{}) { called = true })
	event.Flush()

	event.Fire("order.placed", nil)
	assert.False(t, called)
}
