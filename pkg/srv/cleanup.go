package srv

import "context"

// Cleanup is a Service that only owns a resource: it idles until the
// process stops and releases the resource on shutdown.
type Cleanup func() error

func (c Cleanup) Start(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func (c Cleanup) Shutdown(context.Context) error {
	if c == nil {
		return nil
	}
	return c()
}

func NewCleanup(fn func() error) Service {
	return Cleanup(fn)
}
