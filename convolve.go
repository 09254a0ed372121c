package sobel

import (
	"context"
	"math"
	"unsafe"
)

// ConvolveChannel computes the gradient magnitude of one channel of input
// and writes it into the same channel of output.
//
// For every interior pixel the horizontal and vertical responses gx and gy
// of kx and ky are combined as sqrt(gx*gx + gy*gy), clamped to [0, 255] and
// truncated to a byte. The one-pixel border of output is not written.
//
// Both buffers must hold exactly width*height*channels samples and must not
// overlap in memory; violations are reported before anything is written.
func ConvolveChannel(input, output []byte, width, height int, kx, ky Kernel, channel, channels int) error {
	if err := checkBuffers(input, output, width, height, channels); err != nil {
		return err
	}
	if channel < 0 || channel >= channels {
		return ErrInvalidChannel
	}
	j := newChannelJob(input, output, width, height, channels, channel, kx, ky)
	// A background context never cancels.
	_ = j.run(context.Background())
	return nil
}

// checkBuffers validates both buffers against the image dimensions.
func checkBuffers(input, output []byte, width, height, channels int) error {
	if err := CheckShape("input", input, width, height, channels); err != nil {
		return err
	}
	if err := CheckShape("output", output, width, height, channels); err != nil {
		return err
	}
	if overlaps(input, output) {
		return ErrAliasedBuffers
	}
	return nil
}

// overlaps reports whether the backing memory of a and b intersects.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// channelJob is the private, by-value argument set of one channel
// convolution. input and the kernels are only read; output is only written
// at indices carrying channel.
type channelJob struct {
	input    []byte
	output   []byte
	width    int
	height   int
	kx, ky   Kernel
	channel  int
	channels int
}

// run convolves all interior rows, checking ctx before each row.
func (j *channelJob) run(ctx context.Context) error {
	return j.rows(ctx, kernelHalf, j.height-kernelHalf)
}

// rows convolves interior rows [y0, y1).
func (j *channelJob) rows(ctx context.Context, y0, y1 int) error {
	done := ctx.Done()
	stride := j.width * j.channels
	for y := y0; y < y1; y++ {
		if done != nil {
			select {
			case <-done:
				return ctx.Err()
			default:
			}
		}
		for x := kernelHalf; x < j.width-kernelHalf; x++ {
			var gx, gy float32
			base := y*stride + x*j.channels + j.channel
			for ky := -kernelHalf; ky <= kernelHalf; ky++ {
				for kx := -kernelHalf; kx <= kernelHalf; kx++ {
					p := float32(j.input[base+ky*stride+kx*j.channels])
					k := (ky+kernelHalf)*KernelSize + (kx + kernelHalf)
					// Explicit conversions keep each product rounded to
					// float32 so no fused multiply-add changes the sum.
					gx += float32(p * j.kx[k])
					gy += float32(p * j.ky[k])
				}
			}
			j.output[base] = clampByte(magnitude(gx, gy))
		}
	}
	return nil
}

// magnitude returns sqrt(gx*gx + gy*gy) rounded to float32.
func magnitude(gx, gy float32) float32 {
	sq := float32(gx*gx) + float32(gy*gy)
	return float32(math.Sqrt(float64(sq)))
}

// clampByte clamps v to [0, 255] and truncates toward zero.
// NaN maps to 0.
func clampByte(v float32) byte {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}
