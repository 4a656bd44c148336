package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/hailam/dummyfile/internal/adapters/diskspace"
	"github.com/hailam/dummyfile/internal/adapters/factory"
	adapterutils "github.com/hailam/dummyfile/internal/adapters/utils"
	"github.com/hailam/dummyfile/internal/application"
	"github.com/hailam/dummyfile/internal/config"
	"github.com/hailam/dummyfile/internal/progress"
)

// options holds the flag values of one invocation.
type options struct {
	outputPath    string
	sizeStr       string
	bufferStr     string
	fillWithZeros bool
	progressMode  string
	summary       bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	// --- Composition Root: Initialize Adapters and Core Logic ---
	fileService := application.NewFileService(
		factory.NewFileWriterFactory(),
		adapterutils.NewUtilSizeParser(),
		application.WithSpaceProbe(diskspace.NewProbe()),
		application.WithLogger(logger),
	)
	// --- End Composition Root ---

	rootCmd := newRootCmd(cfg, fileService, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, fileService *application.FileService, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "dummyfile",
		Short: "Dummy File Generation Tool.",
		Long: `dummyfile writes a file of the requested size filled with zero bytes or
random printable text, chunk by chunk, showing progress as it goes.
Sizes take a binary unit: B, KB, MB, GB, TB or PB (e.g. 500KB, 1.5GB).`,
		Example: `  dummyfile --file dummy.txt --size 10KB --buffer 5KB --fillWithZeros
  dummyfile -f big.bin -s 1GB -b 64MB --progress spinner --summary`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, fileService, opts, stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.outputPath, "file", "f", "", "Path of the file to generate (required)")
	flags.StringVarP(&opts.sizeStr, "size", "s", cfg.Size, "Size of the file to generate (e.g. 500KB, 10MB, 1.5GB)")
	flags.StringVarP(&opts.bufferStr, "buffer", "b", cfg.BufferSize, "Buffer size used for each chunk written")
	flags.BoolVarP(&opts.fillWithZeros, "fillWithZeros", "z", false, "Fill with zero bytes instead of random text")
	flags.StringVar(&opts.progressMode, "progress", modeBar, "Progress display: bar, spinner or none")
	flags.BoolVar(&opts.summary, "summary", false, "Print a summary table when done")
	_ = rootCmd.MarkFlagRequired("file")

	return rootCmd
}

func run(cmd *cobra.Command, cfg config.Config, fileService *application.FileService, opts *options, stdout, stderr io.Writer) error {
	label := fmt.Sprintf("%s(%s)", filepath.Base(opts.outputPath), opts.sizeStr)
	display, err := newRenderer(opts.progressMode, stderr, label, cfg.ProgressRefresh)
	if err != nil {
		return err
	}

	reporter := progress.NewReporter(display.Handle, cfg.CompletionWait)
	reporter.ReportStarting(label)

	// --- Execute Core Logic ---
	start := time.Now()
	err = fileService.CreateFile(opts.outputPath, opts.sizeStr, opts.bufferStr, opts.fillWithZeros, reporter.Track(label))
	elapsed := time.Since(start)
	// --- End Execute Core Logic ---

	if err != nil {
		_ = reporter.ReportFailed(cmd.Context(), "write failed", err)
		display.Finish()
		return err
	}
	_ = reporter.ReportCompleted(cmd.Context(), label)
	display.Finish()

	info, err := os.Stat(opts.outputPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, color.Green.Sprintf("Successfully generated %s (%s)",
		opts.outputPath, adapterutils.NewUtilSizeParser().Format(info.Size(), 1)))

	if opts.summary {
		printSummary(stdout, summary{
			path:          opts.outputPath,
			requested:     opts.sizeStr,
			buffer:        opts.bufferStr,
			fillWithZeros: opts.fillWithZeros,
			written:       info.Size(),
			elapsed:       elapsed,
		})
	}
	return nil
}
