package ro

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/ro"
)

// ShutdownSignals end `curryhoward run --watch`.
var ShutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

// GracefulShutdown creates an Observable that emits the first shutdown signal and completes.
func GracefulShutdown() ro.Observable[os.Signal] {
	return SignalStream(ShutdownSignals...)
}

// SignalStream creates an Observable that emits when any of signals is received.
// Notification starts immediately so signals sent before subscription are not lost.
// If the subscriber's context ends first, the stream errors with ctx.Err().
func SignalStream(signals ...os.Signal) ro.Observable[os.Signal] {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	return ro.NewObservableWithContext(func(ctx context.Context, observer ro.Observer[os.Signal]) ro.Teardown {
		go func() {
			select {
			case sig := <-ch:
				observer.NextWithContext(ctx, sig)
				observer.CompleteWithContext(ctx)
			case <-ctx.Done():
				observer.ErrorWithContext(ctx, ctx.Err())
			}
		}()

		return func() {
			signal.Stop(ch)
		}
	})
}

// WaitForShutdown blocks until a shutdown signal is received or ctx is canceled.
//
// Example:
//
//	sig, err := WaitForShutdown(ctx)
//	if err != nil {
//	    return err
//	}
//	log.Info().Msgf("received %v, stopping watch", sig)
func WaitForShutdown(ctx context.Context) (os.Signal, error) {
	return WaitForSignal(ctx, GracefulShutdown())
}

// WaitForSignal blocks until source emits or ctx is canceled.
func WaitForSignal(ctx context.Context, source ro.Observable[os.Signal]) (os.Signal, error) {
	results, _, err := CollectWithContext(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ctx.Err()
	}
	return results[0], nil
}
