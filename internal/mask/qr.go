package mask

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

const qrRenderSizePx = 1024

// QRCode encodes a payload as a QR code and uses it as the mask. The code
// image is dark modules on white, so it runs through the same contain, paste
// and invert pipeline as an external image and comes out with bright
// modules.
type QRCode struct {
	Payload string

	// Scale multiplies the contain-fit ratio, like ImageFile.Scale.
	Scale float64
}

func (q QRCode) raster(cfg Config) (*image.Gray, error) {
	w, h := cfg.canvasSize()

	code, err := qrcode.New(q.Payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("%w: qr encode: %v", ErrImageUnreadable, err)
	}

	return fitInvertBlur(grayscale(code.Image(qrRenderSizePx)), w, h, scaleOr1(q.Scale), cfg.blurRadius()), nil
}
