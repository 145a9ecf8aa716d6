package service

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 255, G: 105, B: 180, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) image.Point {
	t.Helper()
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Size()
}

func TestOptimizeLogo(t *testing.T) {
	t.Run("Shrinks large images", func(t *testing.T) {
		out, err := OptimizeLogo(testPNG(t, 960, 480))

		require.NoError(t, err)
		assert.Equal(t, image.Pt(240, 120), decodedSize(t, out))
	})

	t.Run("Keeps small images", func(t *testing.T) {
		out, err := OptimizeLogo(testPNG(t, 60, 30))

		require.NoError(t, err)
		assert.Equal(t, image.Pt(60, 30), decodedSize(t, out))
	})

	t.Run("Invalid data", func(t *testing.T) {
		_, err := OptimizeLogo([]byte("not an image"))

		assert.Error(t, err)
	})
}

func TestLogoDimensions(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{100, 50, 100, 50},
		{240, 240, 240, 240},
		{480, 240, 240, 120},
		{240, 480, 120, 240},
		{10000, 1, 240, 1},
	}

	for _, tt := range tests {
		w, h := logoDimensions(tt.w, tt.h)
		assert.Equal(t, tt.wantW, w, "%dx%d", tt.w, tt.h)
		assert.Equal(t, tt.wantH, h, "%dx%d", tt.w, tt.h)
	}
}
