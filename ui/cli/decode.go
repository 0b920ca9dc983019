package cli

import (
	"image"
	_ "image/png"
	"os"
)

// DecodeContext loads textures as plain decoded images, no GPU involved.
// The check command uses it to validate an assets directory headlessly
// with the same populate path the GUI takes.
type DecodeContext struct{}

func (DecodeContext) LoadTexture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
