package processing

import (
	"bytes"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

const exifTimeLayout = "2006:01:02 15:04:05"

// extractTakenAt looks up the DateTimeOriginal tag. Absence of usable
// metadata is not an error - any decode or parse failure yields nil.
func extractTakenAt(data []byte) *time.Time {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return nil
	}
	value, err := tag.StringVal()
	if err != nil {
		return nil
	}
	t, err := time.Parse(exifTimeLayout, value)
	if err != nil {
		return nil
	}
	return &t
}
