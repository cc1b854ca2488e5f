package srv

import (
	"context"
	"errors"

	"github.com/sandevgo/deptdir/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts the foreground service on the calling goroutine and blocks until
// it returns. Afterwards every service, the foreground one included, is shut
// down in reverse order. A canceled context counts as a clean stop.
func Run(ctx context.Context, fg Service, services ...Service) error {
	err := fg.Start(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	ShutdownServices(ctx, append([]Service{fg}, services...))
	return err
}

func ShutdownServices(ctx context.Context, services []Service) {
	// shutdown must run even when ctx is already canceled
	ctx = context.WithoutCancel(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
