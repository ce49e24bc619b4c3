package visuals

import "image"
import "os"
import "path/filepath"

import "github.com/fogleman/gg"

// EncodePNG writes img to path, creating parent directories as needed.
func EncodePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}
