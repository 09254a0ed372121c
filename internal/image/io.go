package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/gogpu/sobel"
)

// I/O errors.
var (
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("image: decode failed")

	// ErrEncode is matched by every *EncodeError.
	ErrEncode = errors.New("image: encode failed")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")

	// ErrUnsupportedFormat is returned when encoding to a format that has
	// no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrUnsupportedChannels is returned when encoding an image whose
	// channel count has no color type mapping.
	ErrUnsupportedChannels = errors.New("image: unsupported channel count")
)

// DecodeError reports a file that is missing, unreadable or not a valid
// image.
type DecodeError struct {
	// Path is the file path, or empty when decoding from a reader.
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("image: decode: %v", e.Err)
	}
	return fmt.Sprintf("image: decode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports a target that is not writable or an encoder failure.
type EncodeError struct {
	// Path is the file path, or empty when encoding to a writer.
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("image: encode: %v", e.Err)
	}
	return fmt.Sprintf("image: encode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *EncodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrEncode.
func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

// DecodeOption configures decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	keepGray bool
}

func defaultDecodeOptions() decodeOptions {
	return decodeOptions{keepGray: false}
}

// WithGrayscale keeps grayscale sources as a single channel instead of
// expanding them to RGB.
func WithGrayscale() DecodeOption {
	return func(o *decodeOptions) {
		o.keepGray = true
	}
}

// Load decodes the image file at path, auto-detecting the format.
func Load(path string, opts ...DecodeOption) (*sobel.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	m, format, err := decode(f, opts)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	sobel.Logger().Debug("image: loaded",
		"path", path, "format", format,
		"width", m.Width, "height", m.Height, "channels", m.Channels)
	return m, nil
}

// LoadFromBytes decodes an image held in memory.
func LoadFromBytes(data []byte, opts ...DecodeOption) (*sobel.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: ErrEmptyData}
	}
	return Decode(bytes.NewReader(data), opts...)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader, opts ...DecodeOption) (*sobel.Image, error) {
	m, _, err := decode(r, opts)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return m, nil
}

func decode(r io.Reader, opts []DecodeOption) (*sobel.Image, string, error) {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	m := fromStdImage(img, o.keepGray)
	if m.Width == 0 || m.Height == 0 {
		return nil, format, ErrEmptyData
	}
	return m, format, nil
}

// Save encodes m to path, choosing the format from the file extension.
// Unknown extensions are written as PNG.
func Save(path string, m *sobel.Image) error {
	format := FormatFromPath(path)
	if !format.CanEncode() {
		return &EncodeError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)}
	}

	// Convert before creating the file so a bad buffer leaves no output.
	img, err := toStdImage(m)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	warnDroppedAlpha(path, m, format)

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	if err := encodeStd(f, img, format); err != nil {
		_ = f.Close()
		return &EncodeError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	sobel.Logger().Debug("image: saved",
		"path", path, "format", format.String(),
		"width", m.Width, "height", m.Height, "channels", m.Channels)
	return nil
}

// Encode writes m to w in the given format.
func Encode(w io.Writer, m *sobel.Image, format Format) error {
	if !format.CanEncode() {
		return &EncodeError{Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)}
	}
	img, err := toStdImage(m)
	if err != nil {
		return &EncodeError{Err: err}
	}
	warnDroppedAlpha("", m, format)
	if err := encodeStd(w, img, format); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// EncodeToBytes encodes m in the given format and returns the bytes.
func EncodeToBytes(m *sobel.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// warnDroppedAlpha logs when format cannot store the alpha plane of m.
func warnDroppedAlpha(path string, m *sobel.Image, format Format) {
	if format.HasAlpha() || (m.Channels != 2 && m.Channels != 4) {
		return
	}
	sobel.Logger().Warn("image: format has no alpha, alpha channel dropped",
		"path", path, "format", format.String(), "channels", m.Channels)
}

// jpegQuality is the quality used for JPEG output.
const jpegQuality = 95

func encodeStd(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
