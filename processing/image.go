package processing

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"time"

	_ "golang.org/x/image/webp"

	"photobook/config"

	"github.com/nfnt/resize"
)

// ProcessedImage holds everything derived from a single decode of the
// uploaded image.
type ProcessedImage struct {
	TakenAt *time.Time // nil when no usable capture metadata was found
	Display []byte     // JPEG bounded to DISPLAY_SIZE
	Thumb   []byte     // JPEG bounded to THUMBNAIL_SIZE
}

// ProcessImage decodes the image once, extracts the capture time and
// derives the display and thumbnail renditions. The thumbnail is scaled
// from the already-downscaled display buffer rather than the original.
func ProcessImage(data []byte) (*ProcessedImage, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	result := &ProcessedImage{TakenAt: extractTakenAt(data)}

	// JPEG has no alpha or palette support
	img = flatten(img)

	display := resize.Thumbnail(uint(config.DISPLAY_SIZE), uint(config.DISPLAY_SIZE), img, resize.Lanczos3)
	var displayBuf bytes.Buffer
	if err = jpeg.Encode(&displayBuf, display, &jpeg.Options{Quality: config.DISPLAY_QUALITY}); err != nil {
		return nil, err
	}
	result.Display = displayBuf.Bytes()

	thumb := resize.Thumbnail(uint(config.THUMBNAIL_SIZE), uint(config.THUMBNAIL_SIZE), display, resize.Lanczos3)
	var thumbBuf bytes.Buffer
	if err = jpeg.Encode(&thumbBuf, thumb, &jpeg.Options{Quality: config.THUMBNAIL_QUALITY}); err != nil {
		return nil, err
	}
	result.Thumb = thumbBuf.Bytes()
	return result, nil
}

// flatten redraws paletted or alpha-carrying images onto an opaque
// black background, leaving plain color/grayscale images untouched.
func flatten(img image.Image) image.Image {
	switch img.ColorModel() {
	case color.YCbCrModel, color.GrayModel, color.Gray16Model, color.CMYKModel:
		return img
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return out
}
