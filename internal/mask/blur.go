package mask

import (
	"image"
	"math"
)

// gaussianBlur softens img in place using a separable Gaussian: one
// horizontal and one vertical 1D convolution over a float buffer. Edges are
// handled by clamp extension. A radius <= 0 is the identity.
func gaussianBlur(img *image.Gray, radius float64) {
	if radius <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	kernel := gaussianKernel(radius)
	half := len(kernel) / 2
	tmp := make([]float32, w*h)

	// Horizontal pass: img -> tmp.
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 {
					sx = 0
				} else if sx >= w {
					sx = w - 1
				}
				sum += float32(row[sx]) * weight
			}
			tmp[y*w+x] = sum
		}
	}

	// Vertical pass: tmp -> img.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var sum float32
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 {
					sy = 0
				} else if sy >= h {
					sy = h - 1
				}
				sum += tmp[sy*w+x] * weight
			}
			img.Pix[y*img.Stride+x] = clampUint8(sum)
		}
	}
}

// gaussianKernel builds a normalized 1D Gaussian kernel with sigma = radius.
// The kernel extends to 3 sigma on each side, covering 99.7% of the
// distribution.
func gaussianKernel(radius float64) []float32 {
	if radius <= 0 {
		return []float32{1}
	}
	half := int(math.Ceil(radius * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * radius * radius
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
