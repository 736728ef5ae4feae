// Package export encodes a rendered card and writes it to disk.
package export

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Output file names and encoder settings.
const (
	PNGName     = "thumbnail.png"
	JPEGName    = "thumbnail.jpg"
	JPEGQuality = 90
)

// Encoded holds the serialized forms of one image.
type Encoded struct {
	PNG  []byte
	JPEG []byte
}

// Encode serializes img as PNG and as JPEG at JPEGQuality.
func Encode(img image.Image) (Encoded, error) {
	var pngBuf, jpegBuf bytes.Buffer
	if err := imaging.Encode(&pngBuf, img, imaging.PNG); err != nil {
		return Encoded{}, fmt.Errorf("encode png: %w", err)
	}
	if err := imaging.Encode(&jpegBuf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return Encoded{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return Encoded{PNG: pngBuf.Bytes(), JPEG: jpegBuf.Bytes()}, nil
}

// WriteFiles writes thumbnail.png and thumbnail.jpg into dir and returns
// their paths. dir must already exist; it is never created.
func WriteFiles(dir string, enc Encoded) ([]string, error) {
	files := []struct {
		name string
		data []byte
	}{
		{PNGName, enc.PNG},
		{JPEGName, enc.JPEG},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Save encodes img and writes both files into dir.
func Save(dir string, img image.Image) ([]string, error) {
	enc, err := Encode(img)
	if err != nil {
		return nil, err
	}
	return WriteFiles(dir, enc)
}

// writeFile replaces path through a temp file in the same directory, so a
// failed write never leaves a truncated image behind.
func writeFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	var success bool
	defer func() {
		if !success {
			os.Remove(tmpName)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	success = true
	return nil
}
