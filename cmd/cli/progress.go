package main

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/hailam/dummyfile/internal/progress"
)

const (
	modeBar     = "bar"
	modeSpinner = "spinner"
	modeNone    = "none"
)

// renderer draws progress events on the terminal.
type renderer interface {
	Handle(info progress.Info)
	Finish()
}

func newRenderer(mode string, w io.Writer, label string, refresh time.Duration) (renderer, error) {
	switch mode {
	case modeBar:
		return newBarRenderer(w, label, refresh), nil
	case modeSpinner:
		return newSpinnerRenderer(w, label, refresh), nil
	case modeNone:
		return noneRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown progress mode '%s' (want %s, %s or %s)", mode, modeBar, modeSpinner, modeNone)
	}
}

// barRenderer shows a 0-100 bar, the way the engine's percentage is reported.
type barRenderer struct {
	bar *pb.ProgressBar
}

func newBarRenderer(w io.Writer, label string, refresh time.Duration) *barRenderer {
	bar := pb.New(100).Prefix(label + " ")
	bar.Output = w
	bar.ShowTimeLeft = false
	bar.ShowSpeed = false
	bar.ShowCounters = false
	if refresh > 0 {
		bar.SetRefreshRate(refresh)
	}
	bar.Start()
	return &barRenderer{bar: bar}
}

func (r *barRenderer) Handle(info progress.Info) {
	r.bar.Set(int(info.Percentage))
	if info.IsFailure {
		r.bar.Postfix(" " + info.Message)
	}
}

func (r *barRenderer) Finish() {
	r.bar.Finish()
}

type spinnerRenderer struct {
	s *spinner.Spinner
}

func newSpinnerRenderer(w io.Writer, label string, refresh time.Duration) *spinnerRenderer {
	if refresh <= 0 {
		refresh = 100 * time.Millisecond
	}
	s := spinner.New(spinner.CharSets[14], refresh, spinner.WithWriter(w))
	s.Suffix = " " + label
	s.Start()
	return &spinnerRenderer{s: s}
}

func (r *spinnerRenderer) Handle(info progress.Info) {
	r.s.Lock()
	r.s.Suffix = " " + info.Message
	r.s.Unlock()
}

func (r *spinnerRenderer) Finish() {
	r.s.Stop()
}

type noneRenderer struct{}

func (noneRenderer) Handle(progress.Info) {}

func (noneRenderer) Finish() {}
