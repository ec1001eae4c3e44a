package testutil

import (
	"image"
	"image/color"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with random bytes.
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Intn(256))
	}
}

// RandomImage synthesizes a w x h RGBA image with uniform random pixels.
func (r *RNG) RandomImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.FillBytes(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}

// RandomMask synthesizes a w x h grayscale mask whose pixel values are
// uniform random class ids in [0, classes).
func (r *RNG) RandomMask(w, h, classes int) *image.Gray {
	if classes < 1 {
		classes = 1
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range img.Pix {
		img.Pix[i] = uint8(r.rand.Intn(classes))
	}
	return img
}

// ConstantMask synthesizes a w x h grayscale mask filled with a single
// class id. Useful when a test needs a known target.
func ConstantMask(w, h int, class uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = class
	}
	return img
}

// SolidImage synthesizes a w x h image filled with one color.
func SolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
