package main

import (
	"fmt"
	"os"

	"github.com/hailam/dummyfile/internal/adapters/factory"
	adapterutils "github.com/hailam/dummyfile/internal/adapters/utils"
	"github.com/hailam/dummyfile/internal/application"
	"github.com/hailam/dummyfile/internal/progress"
)

func main() {
	if len(os.Args) < 3 || len(os.Args) > 5 {
		fmt.Println("Usage: dummyfile <output-path> <size> [buffer] [zero|random]")
		os.Exit(1)
	}
	outputPath := os.Args[1]
	sizeStr := os.Args[2]
	bufferStr := application.DefaultBufferSize
	if len(os.Args) > 3 {
		bufferStr = os.Args[3]
	}
	fillWithZeros := len(os.Args) > 4 && os.Args[4] == "zero"

	service := application.NewFileService(factory.NewFileWriterFactory(), adapterutils.NewUtilSizeParser())
	reporter := progress.NewReporter(func(info progress.Info) {
		fmt.Printf("\r%s", info.Message)
	}, 0)

	err := service.CreateFile(outputPath, sizeStr, bufferStr, fillWithZeros, reporter.Track(outputPath))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%s)\n", outputPath, sizeStr)
}
