// Command sobel runs the Sobel edge filter over input.png twice, once on a
// single goroutine and once with one goroutine per channel, writes both
// results and prints how long each run took.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sobel"
	"github.com/gogpu/sobel/internal/image"
)

const (
	inputPath      = "input.png"
	sequentialPath = "sequential_output.png"
	parallelPath   = "parallel_output.png"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	sobel.SetLogger(logger)

	if err := run(context.Background(), message.NewPrinter(language.English)); err != nil {
		logger.Error("sobel failed", "error", err)
		os.Exit(1)
	}
}

// report holds the wall-clock duration of each driver.
type report struct {
	sequential time.Duration
	parallel   time.Duration
}

func run(ctx context.Context, p *message.Printer) error {
	in, err := image.Load(inputPath)
	if err != nil {
		return err
	}

	r, seqOut, parOut, err := filterBoth(ctx, in)
	if err != nil {
		return err
	}

	if err := image.Save(sequentialPath, seqOut); err != nil {
		return err
	}
	if err := image.Save(parallelPath, parOut); err != nil {
		return err
	}

	r.print(os.Stdout, p)
	return nil
}

// print writes both durations in seconds with six significant digits.
func (r report) print(w io.Writer, p *message.Printer) {
	p.Fprintf(w, "Sequential processing time: %.6g seconds\n", r.sequential.Seconds())
	p.Fprintf(w, "Parallel processing time: %.6g seconds\n", r.parallel.Seconds())
}

// filterBoth runs both drivers on in, each into its own zeroed buffer.
func filterBoth(ctx context.Context, in *sobel.Image) (report, *sobel.Image, *sobel.Image, error) {
	var r report
	kx, ky := sobel.SobelX(), sobel.SobelY()

	seqOut := sobel.NewImage(in.Width, in.Height, in.Channels)
	parOut := sobel.NewImage(in.Width, in.Height, in.Channels)

	start := time.Now()
	err := sobel.SequentialFilter(in.Pix, seqOut.Pix, in.Width, in.Height, in.Channels, kx, ky)
	r.sequential = time.Since(start)
	if err != nil {
		return r, nil, nil, err
	}

	start = time.Now()
	err = sobel.ParallelFilter(ctx, in.Pix, parOut.Pix, in.Width, in.Height, in.Channels, kx, ky)
	r.parallel = time.Since(start)
	if err != nil {
		return r, nil, nil, err
	}

	return r, seqOut, parOut, nil
}
