package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishEconomy/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Name() string { return "test" }

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

// blockingJob holds a worker until its context is cancelled
type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(context.Background(), TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()
	defer pool.Stop()

	busy := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(busy))
	<-busy.started

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}), "fills the queue")
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "queue full")
}

func TestPool_StopCancelsRunningJobs(t *testing.T) {
	pool := NewPool(context.Background(), 1, 1)
	pool.Start()
	busy := &blockingJob{started: make(chan struct{})}
	require.True(t, pool.Enqueue(busy))
	<-busy.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	var executed int32
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}), "stopped pool rejects jobs")
	pool.Stop()
}

type fakeSettler struct {
	settled int
	err     error
	calls   int32
}

func (f *fakeSettler) SettleExpired(ctx context.Context) (int, error) {
	atomic.AddInt32(&f.calls, 1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("reaper ran without a deadline")
	}
	return f.settled, f.err
}

func TestAuctionReaper(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		settler := &fakeSettler{settled: 3}
		reaper := NewAuctionReaper(settler, time.Second)

		err := reaper.Process(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&settler.calls))
		assert.Equal(t, JobNameAuctionReaper, reaper.Name())
	})

	t.Run("failure is returned", func(t *testing.T) {
		boom := errors.New("store down")
		reaper := NewAuctionReaper(&fakeSettler{err: boom}, 0)

		err := reaper.Process(context.Background())

		assert.ErrorIs(t, err, boom)
	})
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.Verify(t, func() {
		var executed int32
		pool := NewPool(context.Background(), 4, 8)
		pool.Start()
		for i := 0; i < 8; i++ {
			pool.Enqueue(&testJob{executed: &executed})
		}
		pool.Stop()
	})
}
