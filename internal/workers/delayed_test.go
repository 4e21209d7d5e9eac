// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfter_RunsAfterDelay(t *testing.T) {
	var calls atomic.Int32
	start := time.Now()

	err := After(context.Background(), 20*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestAfter_CancelledBeforeDelay(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := After(ctx, time.Second, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load(), "cancelled task must not run")
}

func TestAfter_AlreadyCancelledZeroDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := After(ctx, 0, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAfter_ZeroDelayRunsImmediately(t *testing.T) {
	called := false
	err := After(context.Background(), 0, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAfter_ReturnsTaskError(t *testing.T) {
	boom := errors.New("boom")
	err := After(context.Background(), time.Millisecond, func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestDelayed_NilFunc(t *testing.T) {
	var w Worker = NewDelayed(time.Millisecond, nil)
	assert.NoError(t, w.Run(context.Background()))
}

func TestAfter_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := After(ctx, time.Second, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDelayed_AsWorker(t *testing.T) {
	var order []string
	workers := []Worker{
		NewDelayed(0, func(ctx context.Context) error { order = append(order, "first"); return nil }),
		NewDelayed(time.Millisecond, func(ctx context.Context) error { order = append(order, "second"); return nil }),
	}

	for _, w := range workers {
		require.NoError(t, w.Run(context.Background()))
	}
	assert.Equal(t, []string{"first", "second"}, order)
}
