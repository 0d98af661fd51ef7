package srv

import (
	"context"

	"github.com/sandevgo/quizzer/pkg/log"
)

// Service is a long running component. Start blocks until the service is
// done; a service returning from Start ends the whole process.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices runs every service in its own goroutine. The first one to
// return from Start cancels ctx through stop.
func StartServices(ctx context.Context, stop context.CancelFunc, services []Service) {
	logger := log.FromCtx(ctx)
	for _, service := range services {
		go func(service Service) {
			defer stop()
			if err := service.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Error().Err(err).Msgf("%T stopped with error", service)
			}
		}(service)
	}
}

// ShutdownServices waits for ctx to be cancelled, then shuts services down
// in reverse order of registration.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
