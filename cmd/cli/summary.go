package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/hailam/dummyfile/internal/ports"
	"github.com/hailam/dummyfile/internal/utils"
)

type summary struct {
	path          string
	requested     string
	buffer        string
	fillWithZeros bool
	written       int64
	elapsed       time.Duration
}

func printSummary(w io.Writer, s summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"File", s.path})
	table.Append([]string{"Requested", s.requested})
	table.Append([]string{"Buffer", s.buffer})
	table.Append([]string{"Fill", string(ports.FillModeOf(s.fillWithZeros))})
	table.Append([]string{"Written", fmt.Sprintf("%s bytes (%s)", humanize.Comma(s.written), utils.FormatSize(s.written, 1))})
	table.Append([]string{"Elapsed", s.elapsed.Round(time.Millisecond).String()})
	if secs := s.elapsed.Seconds(); secs > 0 {
		table.Append([]string{"Throughput", utils.FormatSize(int64(float64(s.written)/secs), 1) + "/s"})
	}
	table.Render()
}
