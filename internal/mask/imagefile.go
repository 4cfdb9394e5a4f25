package mask

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ImageFile uses an external image as the mask. The image is assumed to be
// dark-on-light (drawing on white paper); intensities are inverted so its
// dark regions become the bright, foreground-like mask regions.
type ImageFile struct {
	Path string

	// Scale multiplies the contain-fit ratio. Values above 1 enlarge the
	// image; overflow past the canvas edge is clipped.
	Scale float64
}

func (im ImageFile) raster(cfg Config) (*image.Gray, error) {
	w, h := cfg.canvasSize()

	f, err := os.Open(im.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageUnreadable, im.Path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImageUnreadable, im.Path, err)
	}

	return fitInvertBlur(grayscale(src), w, h, scaleOr1(im.Scale), cfg.blurRadius()), nil
}

func scaleOr1(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}

// grayscale converts any decoded image to 8-bit grayscale.
func grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// fitInvertBlur scales src to fit inside a w x h canvas (contain fit,
// multiplied by scale), pastes it centered onto a zero-filled canvas,
// inverts the whole canvas and softens it with the standard edge blur.
// Inversion happens after the paste, so the empty background ends up bright
// and the image's dark ink ends up bright too; this is the dark-on-light
// input convention carried through deliberately.
func fitInvertBlur(src *image.Gray, w, h int, scale, blur float64) *image.Gray {
	sb := src.Bounds()
	ratio := math.Min(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy())) * scale
	newW := int(math.Round(float64(sb.Dx()) * ratio))
	newH := int(math.Round(float64(sb.Dy()) * ratio))

	resized := image.NewGray(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), src, sb, xdraw.Src, nil)

	canvas := image.NewGray(image.Rect(0, 0, w, h))
	offset := image.Pt((w-newW)/2, (h-newH)/2)
	draw.Draw(canvas, resized.Bounds().Add(offset), resized, image.Point{}, draw.Src)

	for i, v := range canvas.Pix {
		canvas.Pix[i] = 255 - v
	}

	gaussianBlur(canvas, blur)
	return canvas
}
