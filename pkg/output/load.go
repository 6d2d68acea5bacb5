package output

import (
	"fmt"
	"image"
	"os"
)

// Load decodes an image written by Save (PNG, JPEG, BMP or TIFF).
// The decoders register themselves through the encoder imports in output.go.
func Load(path string) (image.Image, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, Format(format), nil
}
