// Package image is the image file adapter for sobel.
//
// It decodes PNG, JPEG, BMP, TIFF and WebP files into 8-bit interleaved
// sobel.Image buffers and encodes such buffers back to PNG, JPEG, BMP or
// TIFF. Palette and grayscale sources are expanded to RGB and 16-bit
// samples are reduced to 8 bits, so the filter core only ever sees 1, 3 or
// 4 channels of 8-bit data.
package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an image container format.
type Format uint8

const (
	// FormatPNG is the Portable Network Graphics format. Lossless.
	FormatPNG Format = iota

	// FormatJPEG is the JPEG format. Lossy, no alpha.
	FormatJPEG

	// FormatBMP is the Windows bitmap format.
	FormatBMP

	// FormatTIFF is the Tagged Image File Format.
	FormatTIFF

	// FormatWebP is the WebP format. Decode only.
	FormatWebP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatNames maps formats to the names registered with image.RegisterFormat.
var formatNames = [formatCount]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
	FormatWebP: "webp",
}

// String returns the registered name of the format.
func (f Format) String() string {
	if !f.isValid() {
		return "unknown"
	}
	return formatNames[f]
}

// isValid reports whether f is a known format.
func (f Format) isValid() bool {
	return f < formatCount
}

// CanEncode reports whether Encode supports f.
func (f Format) CanEncode() bool {
	return f.isValid() && f != FormatWebP
}

// HasAlpha reports whether the format can store an alpha channel.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatPNG, FormatBMP, FormatTIFF, FormatWebP:
		return true
	default:
		return false
	}
}

// FormatFromPath picks a format from the file extension of path.
// Unknown extensions map to FormatPNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	case ".webp":
		return FormatWebP
	default:
		return FormatPNG
	}
}
