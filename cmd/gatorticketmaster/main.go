package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KrishnaVbs1001/Gator-Ticket-Master/config"
	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/booking"
	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/delivery/cli"
	pkgLog "github.com/KrishnaVbs1001/Gator-Ticket-Master/pkg/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: gatorticketmaster <input_file>")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	l := pkgLog.InitializeZapLogger(pkgLog.ZapConfig{
		Level:    cfg.Log.Level,
		Mode:     cfg.Log.Mode,
		Encoding: cfg.Log.Encoding,
	})

	inputPath := os.Args[1]
	outputPath := outputPathFor(inputPath, cfg.Output.Suffix)

	in, err := os.Open(inputPath)
	if err != nil {
		l.Fatalf(ctx, "Failed to open input file: %v", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		l.Fatalf(ctx, "Failed to create output file: %v", err)
	}
	defer out.Close()

	svc := booking.NewService(l)
	proc := cli.NewProcessor(svc, l)

	l.Infof(ctx, "processing commands from %s into %s", inputPath, outputPath)
	if err := proc.Run(ctx, in, out); err != nil {
		l.Fatalf(ctx, "Command processing failed: %v", err)
	}
}

// outputPathFor derives the output file path from the input file name:
// the extension is replaced by the configured suffix.
func outputPathFor(inputPath, suffix string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + suffix
}
