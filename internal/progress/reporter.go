// Package progress turns the engine's (bytesWritten, totalBytes) callbacks
// into percentage/message events for the front ends.
package progress

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/hailam/dummyfile/internal/ports"
)

// Info is one progress event.
type Info struct {
	Message    string
	Percentage float64
	IsFailure  bool
	Err        error
}

// Handler receives progress events.
type Handler func(Info)

// Percentage returns 100*current/total clamped to [0, 100].
// An empty target counts as complete.
func Percentage(current, total int64) float64 {
	if total <= 0 {
		return 100
	}
	return lo.Clamp(100*float64(current)/float64(total), 0, 100)
}

// Reporter forwards progress events to a single handler. Completed and
// failed events are followed by a display delay so a front end can leave
// the final state on screen before tearing its indicator down.
type Reporter struct {
	mu      sync.Mutex
	handler Handler
	wait    time.Duration
}

// NewReporter creates a Reporter. A nil handler drops every event.
func NewReporter(handler Handler, wait time.Duration) *Reporter {
	if handler == nil {
		handler = func(Info) {}
	}
	return &Reporter{handler: handler, wait: wait}
}

func (r *Reporter) Report(info Info) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler(info)
}

func (r *Reporter) ReportClear() {
	r.Report(Info{})
}

func (r *Reporter) ReportStarting(message string) {
	r.Report(Info{Message: message})
}

// ReportCompleted reports 100% and waits the display delay.
func (r *Reporter) ReportCompleted(ctx context.Context, message string) error {
	r.Report(Info{Message: message, Percentage: 100})
	return r.delay(ctx)
}

// ReportFailed reports a failure at 100% and waits the display delay.
func (r *Reporter) ReportFailed(ctx context.Context, message string, err error) error {
	r.Report(Info{Message: message, Percentage: 100, IsFailure: true, Err: err})
	return r.delay(ctx)
}

// Track adapts the reporter to the engine's callback. An event is emitted
// only when the whole-number percentage changes, so a generation with
// thousands of chunks produces at most 101 events.
func (r *Reporter) Track(label string) ports.ProgressFunc {
	last := -1
	return func(bytesWritten, totalBytes int64) {
		percent := Percentage(bytesWritten, totalBytes)
		whole := int(math.Floor(percent))
		if whole == last {
			return
		}
		last = whole
		r.Report(Info{
			Message:    fmt.Sprintf("%s %d%%", label, whole),
			Percentage: percent,
		})
	}
}

func (r *Reporter) delay(ctx context.Context) error {
	if r.wait <= 0 {
		return nil
	}
	timer := time.NewTimer(r.wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
