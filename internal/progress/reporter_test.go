package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		total   int64
		want    float64
	}{
		{"Start", 0, 100, 0},
		{"Half", 50, 100, 50},
		{"Done", 100, 100, 100},
		{"Overshoot", 150, 100, 100},
		{"Negative", -10, 100, 0},
		{"EmptyTarget", 0, 0, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, Percentage(tc.current, tc.total), 1e-9)
		})
	}
}

func TestReporter_Track(t *testing.T) {
	req := require.New(t)

	var events []Info
	reporter := NewReporter(func(info Info) { events = append(events, info) }, 0)
	track := reporter.Track("out.bin")

	const total = 1000
	for written := int64(1); written <= total; written++ {
		track(written, total)
	}

	// one event per whole percent: 0 (written=1..9) through 100
	req.Len(events, 101)
	for i := 1; i < len(events); i++ {
		req.Greater(events[i].Percentage, events[i-1].Percentage)
	}
	last := events[len(events)-1]
	req.Equal(100.0, last.Percentage)
	req.Equal("out.bin 100%", last.Message)
	req.False(last.IsFailure)
}

func TestReporter_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	var events []Info
	reporter := NewReporter(func(info Info) { events = append(events, info) }, 0)

	reporter.ReportStarting("creating")
	req.NoError(reporter.ReportCompleted(ctx, "done"))
	boom := errors.New("boom")
	req.NoError(reporter.ReportFailed(ctx, "failed", boom))
	reporter.ReportClear()

	req.Equal([]Info{
		{Message: "creating"},
		{Message: "done", Percentage: 100},
		{Message: "failed", Percentage: 100, IsFailure: true, Err: boom},
		{},
	}, events)
}

func TestReporter_Delay(t *testing.T) {
	t.Run("Waits", func(t *testing.T) {
		reporter := NewReporter(nil, 20*time.Millisecond)
		start := time.Now()
		require.NoError(t, reporter.ReportCompleted(context.Background(), "done"))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("Cancelled", func(t *testing.T) {
		reporter := NewReporter(nil, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := reporter.ReportFailed(ctx, "failed", nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
