package sample

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray_ShapeAndDType(t *testing.T) {
	a := NewFloat32([]int{3, 2, 2}, make([]float32, 12))
	require.Equal(t, Float32, a.DType())
	require.Equal(t, []int{3, 2, 2}, a.Shape())
	require.Equal(t, 12, a.Len())
	require.Nil(t, a.Int64s())

	b := NewInt64([]int{2, 2}, make([]int64, 4))
	require.Equal(t, Int64, b.DType())
	require.Nil(t, b.Float32s())
}

func TestArray_ShapeMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		NewFloat32([]int{2, 2}, make([]float32, 3))
	})
}

func TestArray_CloneIsDeep(t *testing.T) {
	a := NewFloat32([]int{2}, []float32{1, 2})
	b := a.Clone()
	b.Float32s()[0] = 99

	require.Equal(t, float32(1), a.Float32s()[0])
	require.True(t, a.Equal(NewFloat32([]int{2}, []float32{1, 2})))
	require.False(t, a.Equal(b))
}

func TestSample_CloneIsDeep(t *testing.T) {
	s := Sample{
		KeyImage: NewFloat32([]int{1, 1, 1}, []float32{0.5}),
		KeyMask:  NewInt64([]int{1, 1}, []int64{3}),
	}
	c := s.Clone()
	c[KeyMask].Int64s()[0] = 7

	require.Equal(t, int64(3), s[KeyMask].Int64s()[0])
	require.ElementsMatch(t, []string{KeyImage, KeyMask}, s.Keys())
}

func TestFromImage_RoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	a := FromImage(img)
	require.Equal(t, []int{3, 2, 2}, a.Shape())
	require.InDelta(t, 1.0, a.Float32s()[0], 1e-6)  // R at (0,0)
	require.InDelta(t, 0.0, a.Float32s()[1], 1e-6)  // R at (1,0)
	require.InDelta(t, 1.0, a.Float32s()[5], 1e-6)  // G at (1,0)
	require.InDelta(t, 1.0, a.Float32s()[10], 1e-6) // B at (0,1)

	back := ToImage(a)
	require.Equal(t, img.RGBAAt(1, 1), back.RGBAAt(1, 1))
	require.Equal(t, img.RGBAAt(0, 0), back.RGBAAt(0, 0))
}

func TestFromMask_GrayClassIDs(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{Y: 0})
	img.SetGray(1, 0, color.Gray{Y: 5})

	m := FromMask(img)
	require.Equal(t, []int{1, 2}, m.Shape())
	require.Equal(t, []int64{0, 5}, m.Int64s())
}

func TestFromMask_Paletted(t *testing.T) {
	pal := color.Palette{color.Black, color.White, color.Gray{Y: 128}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	img.SetColorIndex(0, 0, 2)
	img.SetColorIndex(1, 0, 1)

	m := FromMask(img)
	require.Equal(t, []int64{2, 1}, m.Int64s())
}
