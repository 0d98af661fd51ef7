package srv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type oneShot struct {
	mu       sync.Mutex
	shutdown bool
	order    *[]string
	name     string
}

func (o *oneShot) Start(ctx context.Context) error { return nil }

func (o *oneShot) Shutdown(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.shutdown = true
	*o.order = append(*o.order, o.name)
	return nil
}

func TestServices_FirstReturnStopsAll(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var order []string
	closed := false
	cleanup := NewCleanup(func() error {
		closed = true
		order = append(order, "cleanup")
		return nil
	})
	repl := &oneShot{name: "repl", order: &order}

	services := []Service{cleanup, repl}
	StartServices(ctx, stop, services)

	done := make(chan struct{})
	go func() {
		ShutdownServices(ctx, services)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("services did not shut down")
	}

	assert.True(t, closed)
	assert.True(t, repl.shutdown)
	assert.Equal(t, []string{"repl", "cleanup"}, order)
}
