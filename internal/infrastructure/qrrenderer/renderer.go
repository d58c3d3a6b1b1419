package qrrenderer

import (
	qr "github.com/skip2/go-qrcode"
)

// DefaultSize covers the 46x46 mm minimum print size of the payment
// part at print resolution.
const DefaultSize = 600

type Renderer struct {
	size int
}

func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Renderer{size: size}
}

// Render encodes the serialized payload as a PNG with error correction
// level M, the level the Swiss implementation guidelines recommend for
// printed bills. The quiet zone is left to the surrounding print
// layout, so the code itself is rendered without a border.
func (r *Renderer) Render(payload string) ([]byte, error) {
	code, err := qr.New(payload, qr.Medium)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	return code.PNG(r.size)
}
