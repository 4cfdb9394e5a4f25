package mask

import (
	"image"
	"math"
	"testing"
)

func TestGaussianKernelIdentity(t *testing.T) {
	for _, r := range []float64{0, -1} {
		kernel := gaussianKernel(r)
		if len(kernel) != 1 || kernel[0] != 1 {
			t.Errorf("gaussianKernel(%v) = %v, want [1]", r, kernel)
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, r := range []float64{0.5, 1, 2, 5, 12} {
		kernel := gaussianKernel(r)
		var sum float64
		for _, v := range kernel {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 0.001 {
			t.Errorf("gaussianKernel(%v) sums to %v, want ~1", r, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := gaussianKernel(3)
	n := len(kernel)
	for i := 0; i < n/2; i++ {
		if kernel[i] != kernel[n-1-i] {
			t.Fatalf("kernel[%d] = %v != kernel[%d] = %v", i, kernel[i], n-1-i, kernel[n-1-i])
		}
	}
	for i := 1; i <= n/2; i++ {
		if kernel[i] < kernel[i-1] {
			t.Fatalf("kernel not increasing towards center at %d", i)
		}
	}
}

func TestGaussianBlurZeroRadius(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.Pix[5] = 200
	gaussianBlur(img, 0)
	if img.Pix[5] != 200 {
		t.Error("zero radius must leave the image untouched")
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 180
	}
	gaussianBlur(img, 2.5)
	for i, v := range img.Pix {
		if v < 179 || v > 181 {
			t.Fatalf("pixel %d = %d, want ~180 (uniform input stays uniform)", i, v)
		}
	}
}

func TestGaussianBlurSpreadsInk(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 15, 15))
	img.Pix[7*img.Stride+7] = 255
	gaussianBlur(img, 1.5)
	if center := img.Pix[7*img.Stride+7]; center == 255 {
		t.Error("center should lose intensity to neighbors")
	}
	if neighbor := img.Pix[7*img.Stride+8]; neighbor == 0 {
		t.Error("neighbor should gain intensity from the center")
	}
}
