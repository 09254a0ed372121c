package sobel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/sobel/internal/parallel"
)

// SequentialFilter convolves every channel of input with kx and ky on the
// calling goroutine, in increasing channel order, writing into output.
//
// See ConvolveChannel for the numeric policy and buffer requirements.
func SequentialFilter(input, output []byte, width, height, channels int, kx, ky Kernel) error {
	if err := checkBuffers(input, output, width, height, channels); err != nil {
		return err
	}

	start := time.Now()
	ctx := context.Background()
	for c := range channels {
		j := newChannelJob(input, output, width, height, channels, c, kx, ky)
		// A background context never cancels.
		_ = j.run(ctx)
	}

	logRun("sequential", width, height, channels, start)
	return nil
}

// ParallelFilter convolves every channel of input with kx and ky, one
// goroutine per channel, writing into output. It returns only after every
// goroutine has finished.
//
// Goroutines write disjoint channels of output, so output needs no locking.
// The output is byte-identical to SequentialFilter's.
//
// If a goroutine fails, panics, or ctx is done before all rows are
// processed, ParallelFilter returns a non-nil error joining one *WorkerError
// per affected channel. The contents of output are then unspecified.
func ParallelFilter(ctx context.Context, input, output []byte, width, height, channels int, kx, ky Kernel) error {
	return parallelFilter(ctx, input, output, width, height, channels, kx, ky, runJob)
}

// channelFunc processes a single channel job.
type channelFunc func(ctx context.Context, j *channelJob) error

func runJob(ctx context.Context, j *channelJob) error {
	return j.run(ctx)
}

func parallelFilter(ctx context.Context, input, output []byte, width, height, channels int,
	kx, ky Kernel, work channelFunc) error {
	if err := checkBuffers(input, output, width, height, channels); err != nil {
		return err
	}

	// Jobs are built before any goroutine starts; each task owns jobs[c].
	jobs := make([]channelJob, channels)
	for c := range jobs {
		jobs[c] = newChannelJob(input, output, width, height, channels, c, kx, ky)
	}

	start := time.Now()
	err := parallel.Run(ctx, channels, func(ctx context.Context, c int) error {
		if err := work(ctx, &jobs[c]); err != nil {
			Logger().Warn("sobel: channel failed", "channel", c, "error", err)
			return &WorkerError{Channel: c, Err: err}
		}
		Logger().Debug("sobel: channel done", "channel", c)
		return nil
	})
	if err != nil {
		return fmt.Errorf("sobel: parallel filter: %w", err)
	}

	logRun("parallel", width, height, channels, start)
	return nil
}

func newChannelJob(input, output []byte, width, height, channels, channel int, kx, ky Kernel) channelJob {
	return channelJob{
		input:    input,
		output:   output,
		width:    width,
		height:   height,
		kx:       kx,
		ky:       ky,
		channel:  channel,
		channels: channels,
	}
}

func logRun(driver string, width, height, channels int, start time.Time) {
	Logger().Debug("sobel: filter done",
		slog.String("driver", driver),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("channels", channels),
		slog.Duration("elapsed", time.Since(start)),
	)
}
