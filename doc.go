// Package sobel computes Sobel gradient-magnitude edge maps over 8-bit
// interleaved raster buffers.
//
// # Overview
//
// The package operates on a flat byte buffer laid out row-major with
// interleaved channels: the sample for pixel (x, y) and channel c lives at
// index ((y*width + x)*channels + c). Decoding and encoding image files is
// left to the caller; see internal/image for the adapter used by cmd/sobel.
//
// # Quick Start
//
//	in := sobel.NewImage(w, h, 3)
//	// ... fill in.Pix ...
//	out := sobel.NewImage(w, h, 3)
//
//	err := sobel.ParallelFilter(ctx, in.Pix, out.Pix, w, h, 3,
//	    sobel.SobelX(), sobel.SobelY())
//
// # Drivers
//
// Two drivers produce byte-identical output:
//   - [SequentialFilter] convolves channel 0, 1, ... on the calling goroutine.
//   - [ParallelFilter] starts one goroutine per channel and waits for all of
//     them. Each goroutine writes only samples of its own channel, so the
//     shared output buffer needs no locking.
//
// Border pixels (first and last row and column) are never written and keep
// whatever value the output buffer held before the call.
//
// # Numeric policy
//
// Gradients are accumulated in float32, combined as sqrt(gx*gx + gy*gy),
// clamped to [0, 255] and truncated toward zero.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route debug records
// to a [log/slog] handler.
package sobel
