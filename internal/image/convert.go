package image

import (
	"image"
	"image/color"

	"github.com/gogpu/sobel"
)

// channelsFor returns the channel count a decoded img is stored with.
//
// Sources with a straight alpha channel keep it. Premultiplied sources keep
// alpha only when some pixel is not opaque, which is how the standard
// decoders report RGB data without alpha.
func channelsFor(img image.Image, keepGray bool) int {
	switch src := img.(type) {
	case *image.Gray, *image.Gray16:
		if keepGray {
			return 1
		}
		return 3
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	case *image.NRGBA, *image.NRGBA64, *image.NYCbCrA, *image.Alpha, *image.Alpha16:
		return 4
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	switch img.ColorModel() {
	case color.NRGBAModel, color.RGBAModel,
		color.NRGBA64Model, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return 4
	default:
		return 3
	}
}

// fromStdImage copies img into a new 8-bit interleaved image.
func fromStdImage(img image.Image, keepGray bool) *sobel.Image {
	b := img.Bounds()
	channels := channelsFor(img, keepGray)
	out := sobel.NewImage(b.Dx(), b.Dy(), channels)
	if out == nil {
		return &sobel.Image{Channels: channels}
	}

	// Fast paths for the common decoder outputs.
	switch src := img.(type) {
	case *image.NRGBA:
		if channels == 4 {
			for y := range out.Height {
				row := src.Pix[y*src.Stride : y*src.Stride+out.Width*4]
				copy(out.Pix[y*out.Width*4:], row)
			}
			return out
		}
	case *image.Gray:
		if channels == 1 {
			for y := range out.Height {
				row := src.Pix[y*src.Stride : y*src.Stride+out.Width]
				copy(out.Pix[y*out.Width:], row)
			}
			return out
		}
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if channels == 1 {
				out.Pix[i] = color.GrayModel.Convert(c).(color.Gray).Y
				i++
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			out.Pix[i] = n.R
			out.Pix[i+1] = n.G
			out.Pix[i+2] = n.B
			if channels == 4 {
				out.Pix[i+3] = n.A
			}
			i += channels
		}
	}
	return out
}

// toStdImage wraps m in a standard library image for encoding.
//
// Channel counts map to color types as follows:
//   - 1: *image.Gray
//   - 2: gray + alpha, expanded to *image.NRGBA
//   - 3: opaque *image.RGBA (PNG and TIFF store it without alpha)
//   - 4: *image.NRGBA
func toStdImage(m *sobel.Image) (image.Image, error) {
	if m == nil {
		return nil, ErrEmptyData
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, m.Width, m.Height)

	switch m.Channels {
	case 1:
		gray := image.NewGray(rect)
		copy(gray.Pix, m.Pix)
		return gray, nil

	case 4:
		nrgba := image.NewNRGBA(rect)
		copy(nrgba.Pix, m.Pix)
		return nrgba, nil

	case 2:
		nrgba := image.NewNRGBA(rect)
		for p := range m.Width * m.Height {
			g, a := m.Pix[p*2], m.Pix[p*2+1]
			dst := nrgba.Pix[p*4 : p*4+4 : p*4+4]
			dst[0], dst[1], dst[2], dst[3] = g, g, g, a
		}
		return nrgba, nil

	case 3:
		// Opaque, so premultiplied and straight alpha coincide.
		rgba := image.NewRGBA(rect)
		for p := range m.Width * m.Height {
			copy(rgba.Pix[p*4:p*4+3], m.Pix[p*3:p*3+3])
			rgba.Pix[p*4+3] = 255
		}
		return rgba, nil

	default:
		return nil, ErrUnsupportedChannels
	}
}
