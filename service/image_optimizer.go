package service

import (
	"bytes"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

// maxLogoSize is the largest dimension of the logo printed on a label, in pixels.
// Labels show it at 60px, the rest is headroom for print resolution.
const maxLogoSize = 240

// OptimizeLogo shrinks a label logo so the inlined data URI stays small.
// imageData: raw image bytes (PNG, JPEG, GIF, ...)
// Returns PNG bytes, keeping transparency
func OptimizeLogo(imageData []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	log.Debugf("📸 Logo decoded: bounds=%v", bounds)

	var resized image.Image = img
	newWidth, newHeight := logoDimensions(width, height)
	if newWidth != width || newHeight != height {
		log.Debugf("🔄 Resizing logo: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}

	log.Debugf("✓ Logo optimized: output_size=%d bytes", buf.Len())
	return buf.Bytes(), nil
}

// logoDimensions fits width x height inside maxLogoSize, keeping the aspect ratio.
// Images that already fit are left alone.
func logoDimensions(width, height int) (int, int) {
	if width <= maxLogoSize && height <= maxLogoSize {
		return width, height
	}
	if width > height {
		return maxLogoSize, max(1, int(float64(height)*float64(maxLogoSize)/float64(width)))
	}
	return max(1, int(float64(width)*float64(maxLogoSize)/float64(height))), maxLogoSize
}
