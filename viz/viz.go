package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"slices"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/hupe1980/datago/sample"
)

type plotOptions struct {
	showTitles bool
	suptitle   string
	palette    Palette
	panelSize  int
}

// PlotOption configures Render.
type PlotOption func(*plotOptions)

// WithShowTitles toggles per-panel titles. Enabled by default.
func WithShowTitles(show bool) PlotOption {
	return func(o *plotOptions) { o.showTitles = show }
}

// WithSuptitle sets the figure's overall title.
func WithSuptitle(title string) PlotOption {
	return func(o *plotOptions) { o.suptitle = title }
}

// WithPalette sets the mask colorization palette. If nil, DefaultPalette
// is used.
func WithPalette(p Palette) PlotOption {
	return func(o *plotOptions) {
		if p == nil {
			p = DefaultPalette
		}
		o.palette = p
	}
}

// WithPanelSize sets the square edge length each panel is scaled to.
// Values <= 0 keep the sample's native resolution.
func WithPanelSize(px int) PlotOption {
	return func(o *plotOptions) { o.panelSize = px }
}

// Panel is one rendered pane of a figure.
type Panel struct {
	Title string
	Image image.Image
}

// Figure is a renderable composition of panels.
type Figure struct {
	Suptitle string
	Panels   []Panel
}

// Image composes the panels side by side into a single image.
func (f *Figure) Image() image.Image {
	if len(f.Panels) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	var width, height int
	for _, p := range f.Panels {
		b := p.Image.Bounds()
		width += b.Dx()
		if b.Dy() > height {
			height = b.Dy()
		}
	}
	out := imaging.New(width, height, color.NRGBA{A: 0xff})
	x := 0
	for _, p := range f.Panels {
		out = imaging.Paste(out, p.Image, image.Pt(x, 0))
		x += p.Image.Bounds().Dx()
	}
	return out
}

// EncodePNG writes the composed figure as a PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// Render builds a figure from a sample. The image panel is always first,
// followed by the mask and, when the sample carries one, the prediction.
// The sample is not modified.
func Render(s sample.Sample, opts ...PlotOption) (*Figure, error) {
	o := plotOptions{showTitles: true, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&o)
	}

	img := s[sample.KeyImage]
	if img == nil {
		return nil, fmt.Errorf("viz: sample has no %q entry", sample.KeyImage)
	}
	if img.DType() != sample.Float32 || len(img.Shape()) != 3 {
		return nil, fmt.Errorf("viz: %q must be a CxHxW float32 array, got %s", sample.KeyImage, img)
	}

	fig := &Figure{Suptitle: o.suptitle}
	fig.Panels = append(fig.Panels, Panel{
		Title: title(o, "Image"),
		Image: o.scale(renderImage(img)),
	})

	if mask := s[sample.KeyMask]; mask != nil {
		p, err := renderMask(mask, o.palette)
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, Panel{Title: title(o, "Mask"), Image: o.scale(p)})
	}
	if pred := s[sample.KeyPrediction]; pred != nil {
		p, err := renderMask(pred, o.palette)
		if err != nil {
			return nil, err
		}
		fig.Panels = append(fig.Panels, Panel{Title: title(o, "Prediction"), Image: o.scale(p)})
	}
	return fig, nil
}

func title(o plotOptions, s string) string {
	if !o.showTitles {
		return ""
	}
	return s
}

func (o plotOptions) scale(img image.Image) image.Image {
	if o.panelSize <= 0 {
		return img
	}
	return imaging.Resize(img, o.panelSize, o.panelSize, imaging.NearestNeighbor)
}

// renderImage stretches the image contrast to the 2nd..98th percentile
// before converting to 8-bit, so dark satellite-style imagery stays visible.
// Operates on a copy; the sample's array is untouched.
func renderImage(a *sample.Array) image.Image {
	data := slices.Clone(a.Float32s())
	lo, hi := percentiles(data, 0.02, 0.98)
	if hi > lo {
		scale := 1 / (hi - lo)
		for i, v := range data {
			data[i] = (v - lo) * scale
		}
	}
	return sample.ToImage(sample.NewFloat32(a.Shape(), data))
}

func percentiles(data []float32, lo, hi float64) (float32, float32) {
	if len(data) == 0 {
		return 0, 1
	}
	sorted := slices.Clone(data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	at := func(q float64) float32 {
		i := int(q * float64(len(sorted)-1))
		return sorted[i]
	}
	return at(lo), at(hi)
}

func renderMask(a *sample.Array, p Palette) (image.Image, error) {
	if a.DType() != sample.Int64 || len(a.Shape()) != 2 {
		return nil, fmt.Errorf("viz: mask must be an HxW int64 array, got %s", a)
	}
	shape := a.Shape()
	h, w := shape[0], shape[1]
	data := a.Int64s()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, p.Color(data[y*w+x]))
		}
	}
	return img, nil
}
