package sobel

import "math"

// Image is an 8-bit raster stored as a flat, row-major buffer with
// interleaved channels.
type Image struct {
	// Pix holds Width*Height*Channels samples. The sample for pixel (x, y)
	// and channel c is at Pix[(y*Width+x)*Channels+c].
	Pix []byte

	Width    int
	Height   int
	Channels int
}

// NewImage allocates a zeroed image. It returns nil for non-positive or
// overflowing dimensions.
func NewImage(width, height, channels int) *Image {
	if !validDims(width, height, channels) {
		return nil
	}
	return &Image{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Validate checks that len(Pix) matches the image dimensions.
func (m *Image) Validate() error {
	return CheckShape("image", m.Pix, m.Width, m.Height, m.Channels)
}

// Offset returns the index of channel c of pixel (x, y) in Pix.
// The caller is responsible for bounds.
func (m *Image) Offset(x, y, c int) int {
	return (y*m.Width+x)*m.Channels + c
}

// At returns channel c of pixel (x, y).
func (m *Image) At(x, y, c int) byte {
	return m.Pix[m.Offset(x, y, c)]
}

// Set stores v in channel c of pixel (x, y).
func (m *Image) Set(x, y, c int, v byte) {
	m.Pix[m.Offset(x, y, c)] = v
}

// validDims reports whether the dimensions are positive and
// width*height*channels fits in an int.
func validDims(width, height, channels int) bool {
	if width <= 0 || height <= 0 || channels <= 0 {
		return false
	}
	return width <= math.MaxInt/height && width*height <= math.MaxInt/channels
}

// CheckShape returns a *BufferShapeError if buf cannot hold exactly
// width*height*channels samples. name labels the buffer in the error.
func CheckShape(name string, buf []byte, width, height, channels int) error {
	if !validDims(width, height, channels) {
		return &BufferShapeError{
			Name: name, Len: len(buf), Want: -1,
			Width: width, Height: height, Channels: channels,
		}
	}
	want := width * height * channels
	if len(buf) != want {
		return &BufferShapeError{
			Name: name, Len: len(buf), Want: want,
			Width: width, Height: height, Channels: channels,
		}
	}
	return nil
}
