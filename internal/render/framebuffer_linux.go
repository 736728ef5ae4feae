//go:build linux

package render

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
)

// ShowOnFramebuffer scales img onto the framebuffer device at path, e.g. /dev/fb0.
func ShowOnFramebuffer(path string, img image.Image) error {
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	defer dev.Close()
	blit(dev, img)
	return nil
}
