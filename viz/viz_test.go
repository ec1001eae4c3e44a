package viz

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/hupe1980/datago/sample"
	"github.com/stretchr/testify/require"
)

func testSample() sample.Sample {
	img := make([]float32, 3*4*4)
	for i := range img {
		img[i] = float32(i) / float32(len(img))
	}
	mask := make([]int64, 4*4)
	mask[0], mask[5] = 1, 2
	return sample.Sample{
		sample.KeyImage: sample.NewFloat32([]int{3, 4, 4}, img),
		sample.KeyMask:  sample.NewInt64([]int{4, 4}, mask),
	}
}

func TestRender_ImageAndMaskPanels(t *testing.T) {
	fig, err := Render(testSample())
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)
	require.Equal(t, "Image", fig.Panels[0].Title)
	require.Equal(t, "Mask", fig.Panels[1].Title)

	composed := fig.Image()
	require.Equal(t, 8, composed.Bounds().Dx())
	require.Equal(t, 4, composed.Bounds().Dy())
}

func TestRender_PredictionPanel(t *testing.T) {
	s := testSample()
	s[sample.KeyPrediction] = sample.NewInt64([]int{4, 4}, make([]int64, 16))

	fig, err := Render(s, WithSuptitle("sample 0"))
	require.NoError(t, err)
	require.Len(t, fig.Panels, 3)
	require.Equal(t, "Prediction", fig.Panels[2].Title)
	require.Equal(t, "sample 0", fig.Suptitle)
}

func TestRender_DoesNotMutateSample(t *testing.T) {
	s := testSample()
	s[sample.KeyPrediction] = sample.NewInt64([]int{4, 4}, make([]int64, 16))
	before := s.Clone()

	_, err := Render(s)
	require.NoError(t, err)

	require.ElementsMatch(t, before.Keys(), s.Keys())
	for k := range before {
		require.True(t, before[k].Equal(s[k]), "key %q changed", k)
	}
}

func TestRender_NoTitles(t *testing.T) {
	fig, err := Render(testSample(), WithShowTitles(false))
	require.NoError(t, err)
	for _, p := range fig.Panels {
		require.Empty(t, p.Title)
	}
}

func TestRender_MissingImage(t *testing.T) {
	_, err := Render(sample.Sample{})
	require.Error(t, err)
}

func TestRender_BadMaskShape(t *testing.T) {
	s := testSample()
	s[sample.KeyMask] = sample.NewInt64([]int{16}, make([]int64, 16))
	_, err := Render(s)
	require.Error(t, err)
}

func TestFigure_EncodePNG(t *testing.T) {
	fig, err := Render(testSample())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.EncodePNG(&buf))
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestPalette_Color(t *testing.T) {
	p := Palette{{0, 0, 0, 255}, {255, 0, 0, 255}}
	require.Equal(t, color.RGBA{255, 0, 0, 255}, p.Color(1))
	require.Equal(t, color.RGBA{255, 0, 0, 255}, p.Color(3)) // wraps
	require.Equal(t, color.RGBA{0, 0, 0, 255}, p.Color(0))
	require.Equal(t, color.RGBA{A: 255}, Palette{}.Color(5))
}

func TestWithPanelSize(t *testing.T) {
	fig, err := Render(testSample(), WithPanelSize(16))
	require.NoError(t, err)
	require.Equal(t, 16, fig.Panels[0].Image.Bounds().Dx())
	require.Equal(t, 16, fig.Panels[0].Image.Bounds().Dy())
}
