package sample

import (
	"image"
	"image/color"
)

// FromImage converts an image into a CxHxW float32 array with values scaled
// to [0, 1]. The channel order is R, G, B.
func FromImage(img image.Image) *Array {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]float32, 3*h*w)
	plane := h * w

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*w + x
			data[i] = float32(r>>8) / 255
			data[plane+i] = float32(g>>8) / 255
			data[2*plane+i] = float32(bl>>8) / 255
		}
	}
	return NewFloat32([]int{3, h, w}, data)
}

// FromMask converts a mask image into an HxW int64 array of class ids. For
// grayscale and paletted images the pixel value is the class id; for other
// color models the 8-bit gray value is used.
func FromMask(img image.Image) *Array {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]int64, h*w)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			data[y*w+x] = classAt(img, b.Min.X+x, b.Min.Y+y)
		}
	}
	return NewInt64([]int{h, w}, data)
}

func classAt(img image.Image, x, y int) int64 {
	switch m := img.(type) {
	case *image.Gray:
		return int64(m.GrayAt(x, y).Y)
	case *image.Paletted:
		return int64(m.ColorIndexAt(x, y))
	default:
		return int64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
	}
}

// ToImage converts a CxHxW float32 array back into an RGBA image, clamping
// values to [0, 1]. Inverse of FromImage up to 8-bit quantization.
func ToImage(a *Array) *image.RGBA {
	shape := a.Shape()
	c, h, w := shape[0], shape[1], shape[2]
	data := a.Float32s()
	plane := h * w

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			var r, g, b float32
			r = data[i]
			if c >= 3 {
				g = data[plane+i]
				b = data[2*plane+i]
			} else {
				g, b = r, r
			}
			img.SetRGBA(x, y, color.RGBA{
				R: clamp8(r),
				G: clamp8(g),
				B: clamp8(b),
				A: 0xff,
			})
		}
	}
	return img
}

func clamp8(v float32) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
