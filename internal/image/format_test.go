package image

import "testing"

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"OUT.PNG", FormatPNG},
		{"photo.jpg", FormatJPEG},
		{"photo.JPEG", FormatJPEG},
		{"scan.bmp", FormatBMP},
		{"scan.tif", FormatTIFF},
		{"scan.tiff", FormatTIFF},
		{"pic.webp", FormatWebP},
		{"noext", FormatPNG},
		{"dir.d/file.unknown", FormatPNG},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatPNG, "png"},
		{FormatJPEG, "jpeg"},
		{FormatBMP, "bmp"},
		{FormatTIFF, "tiff"},
		{FormatWebP, "webp"},
		{Format(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_CanEncode(t *testing.T) {
	for _, f := range []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF} {
		if !f.CanEncode() {
			t.Errorf("%v.CanEncode() = false, want true", f)
		}
	}
	for _, f := range []Format{FormatWebP, Format(200)} {
		if f.CanEncode() {
			t.Errorf("%v.CanEncode() = true, want false", f)
		}
	}
}

func TestFormat_HasAlpha(t *testing.T) {
	if FormatJPEG.HasAlpha() {
		t.Error("FormatJPEG.HasAlpha() = true, want false")
	}
	if !FormatPNG.HasAlpha() {
		t.Error("FormatPNG.HasAlpha() = false, want true")
	}
}
