package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/marketplace-core/internal/domain"
	"github.com/jsamuelsen11/marketplace-core/internal/platform/clock"
	"github.com/jsamuelsen11/marketplace-core/mocks"
)

func TestSweepScheduler_RunOnce(t *testing.T) {
	t.Parallel()
	sweeper := mocks.NewMockSweepService(t)
	clk := clock.NewManual(t0)

	sweeper.EXPECT().Sweep(mock.Anything, domain.KindBounty, t0).Return(2, nil).Once()
	sweeper.EXPECT().Sweep(mock.Anything, domain.KindHackathon, t0).Return(0, errDisk).Once()

	s := NewSweepScheduler(sweeper, clk, time.Minute, []domain.Kind{domain.KindBounty, domain.KindHackathon}, nil)
	moved := s.RunOnce(context.Background())

	if moved[domain.KindBounty] != 2 || moved[domain.KindHackathon] != 0 {
		t.Errorf("RunOnce() = %v, want bounty:2 hackathon:0", moved)
	}
}

func TestSweepScheduler_RunStopsOnCancel(t *testing.T) {
	t.Parallel()
	sweeper := mocks.NewMockSweepService(t)
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	sweeper.EXPECT().Sweep(mock.Anything, domain.KindBounty, mock.Anything).
		RunAndReturn(func(context.Context, domain.Kind, time.Time) (int, error) {
			if calls.Add(1) == 2 {
				cancel()
			}
			return 0, nil
		})

	s := NewSweepScheduler(sweeper, clock.System{}, time.Millisecond, []domain.Kind{domain.KindBounty}, nil)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
	if calls.Load() < 2 {
		t.Errorf("Sweep calls = %d, want at least 2", calls.Load())
	}
}

func TestSweepScheduler_SkipsAfterCancel(t *testing.T) {
	t.Parallel()
	sweeper := mocks.NewMockSweepService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSweepScheduler(sweeper, clock.NewManual(t0), time.Minute, []domain.Kind{domain.KindBounty}, nil)
	if moved := s.RunOnce(ctx); len(moved) != 0 {
		t.Errorf("RunOnce(cancelled) = %v, want no sweeps", moved)
	}
}
