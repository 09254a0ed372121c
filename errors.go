package sobel

import (
	"errors"
	"fmt"
)

// Errors returned by the convolution core.
var (
	// ErrBufferShape is matched by every *BufferShapeError.
	ErrBufferShape = errors.New("sobel: buffer length does not match width*height*channels")

	// ErrInvalidChannel is returned when the channel index or channel count
	// is out of range.
	ErrInvalidChannel = errors.New("sobel: invalid channel")

	// ErrAliasedBuffers is returned when input and output share storage.
	ErrAliasedBuffers = errors.New("sobel: input and output buffers alias")

	// ErrWorkerFailed is matched by every *WorkerError.
	ErrWorkerFailed = errors.New("sobel: worker failed")
)

// BufferShapeError reports a buffer whose length disagrees with the image
// dimensions it was passed with.
type BufferShapeError struct {
	// Name identifies the offending buffer ("input" or "output").
	Name string

	// Len is the actual buffer length.
	Len int

	// Want is width*height*channels, or -1 if the dimensions themselves
	// are invalid.
	Want int

	Width, Height, Channels int
}

func (e *BufferShapeError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("sobel: %s: invalid dimensions %dx%dx%d",
			e.Name, e.Width, e.Height, e.Channels)
	}
	return fmt.Sprintf("sobel: %s: len %d, want %d (%dx%dx%d)",
		e.Name, e.Len, e.Want, e.Width, e.Height, e.Channels)
}

// Is reports whether target is ErrBufferShape.
func (e *BufferShapeError) Is(target error) bool {
	return target == ErrBufferShape
}

// WorkerError reports the failure of the goroutine that processed one
// channel in ParallelFilter. The channel's output samples must be treated
// as invalid.
type WorkerError struct {
	Channel int
	Err     error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("sobel: channel %d: %v", e.Channel, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WorkerError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWorkerFailed.
func (e *WorkerError) Is(target error) bool {
	return target == ErrWorkerFailed
}
