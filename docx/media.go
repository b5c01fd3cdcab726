package docx

import (
	"bytes"
	"image"

	// Raster decoders registered for media sniffing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniffImageFormat detects the format of embedded media bytes ("png",
// "jpeg", "gif", "bmp", "tiff", "webp"). Returns "" for nil or unrecognized
// data. The result is diagnostic only and never affects conversion output.
func sniffImageFormat(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	return format
}
