package sobel

// Test helper functions shared across sobel tests.

// patternImage returns an image filled with a deterministic non-trivial
// pattern so every channel differs.
func patternImage(w, h, channels int) *Image {
	m := NewImage(w, h, channels)
	for y := range h {
		for x := range w {
			for c := range channels {
				m.Set(x, y, c, byte((x*31+y*17+c*53+x*y*7)%256))
			}
		}
	}
	return m
}

// filledImage returns an image whose every sample is v.
func filledImage(w, h, channels int, v byte) *Image {
	m := NewImage(w, h, channels)
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

// isBorder reports whether (x, y) lies on the outermost row or column.
func isBorder(x, y, w, h int) bool {
	return x == 0 || y == 0 || x == w-1 || y == h-1
}

// runSequential filters in into a fresh buffer initialized to fill.
func runSequential(in *Image, fill byte) (*Image, error) {
	out := filledImage(in.Width, in.Height, in.Channels, fill)
	err := SequentialFilter(in.Pix, out.Pix, in.Width, in.Height, in.Channels, SobelX(), SobelY())
	return out, err
}
