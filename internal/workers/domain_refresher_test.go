// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avetrov/agencydesk/internal/logger"
)

type refresherMock struct {
	calls atomic.Int32
	err   error
}

func (m *refresherMock) RefreshDomains(_ context.Context) error {
	m.calls.Add(1)
	return m.err
}

func TestDomainRefreshWorker_SweepsImmediatelyAndOnTick(t *testing.T) {
	refresher := &refresherMock{}
	worker := NewDomainRefreshWorker(refresher, 20*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	worker.Run(ctx)

	// One immediate sweep plus at least two ticks within the window.
	assert.GreaterOrEqual(t, refresher.calls.Load(), int32(3))
}

func TestDomainRefreshWorker_KeepsTickingAfterFailure(t *testing.T) {
	refresher := &refresherMock{err: assert.AnError}
	worker := NewDomainRefreshWorker(refresher, 20*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	worker.Run(ctx)

	assert.GreaterOrEqual(t, refresher.calls.Load(), int32(2))
}

func TestDomainRefreshWorker_DisabledWithoutInterval(t *testing.T) {
	refresher := &refresherMock{}
	worker := NewDomainRefreshWorker(refresher, 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		worker.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled worker did not return")
	}
	assert.Zero(t, refresher.calls.Load())
}
