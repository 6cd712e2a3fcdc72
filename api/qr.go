package api

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const dataURIPrefix = "data:image/png;base64,"

// PNGRenderer turns a login code into a PNG data URI a browser can display.
type PNGRenderer struct {
	size int
}

func NewPNGRenderer(size int) PNGRenderer {
	if size <= 0 {
		size = 256
	}
	return PNGRenderer{size: size}
}

func (r PNGRenderer) DataURI(code string) (string, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, r.size)
	if err != nil {
		return "", fmt.Errorf("encoding qr: %w", err)
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}
