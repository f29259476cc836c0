package ro

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownSignals(t *testing.T) {
	assert.Contains(t, ShutdownSignals, syscall.SIGINT)
	assert.Contains(t, ShutdownSignals, syscall.SIGTERM)
}

func TestWaitForSignalReceivesSignal(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	source := SignalStream(syscall.SIGUSR1)
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))

	sig, err := WaitForSignal(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, syscall.SIGUSR1, sig)
}

func TestWaitForShutdownContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	var sig os.Signal
	var err error
	go func() {
		sig, err = WaitForShutdown(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		assert.Nil(t, sig)
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForShutdown did not return after cancel")
	}
}
