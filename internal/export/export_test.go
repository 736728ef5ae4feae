package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1200, 630))
	for y := 0; y < 630; y++ {
		for x := 0; x < 1200; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x2a, A: 0xFF})
		}
	}
	return img
}

func TestSaveWritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	paths, err := Save(dir, testImage())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != PNGName || filepath.Base(paths[1]) != JPEGName {
		t.Fatalf("paths = %v", paths)
	}

	decoders := map[string]func([]byte) (image.Image, error){
		PNGName:  func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		JPEGName: func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) },
	}
	for name, decode := range decoders {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
		img, err := decode(data)
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 1200 || b.Dy() != 630 {
			t.Errorf("%s size = %dx%d, want 1200x630", name, b.Dx(), b.Dy())
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("dir has %d entries, want only the two images", len(entries))
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	first, err := Encode(testImage())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := Encode(testImage())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(first.PNG, second.PNG) {
		t.Error("PNG bytes differ between runs")
	}
}

func TestJPEGIsCloseToPNG(t *testing.T) {
	enc, err := Encode(testImage())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	lossless, _ := png.Decode(bytes.NewReader(enc.PNG))
	lossy, err := jpeg.Decode(bytes.NewReader(enc.JPEG))
	if err != nil {
		t.Fatalf("decode jpeg: %v", err)
	}
	r1, g1, b1, _ := lossless.At(600, 300).RGBA()
	r2, g2, b2, _ := lossy.At(600, 300).RGBA()
	for _, d := range []int{int(r1>>8) - int(r2>>8), int(g1>>8) - int(g2>>8), int(b1>>8) - int(b2>>8)} {
		if d < -16 || d > 16 {
			t.Errorf("jpeg drift %d at (600,300) exceeds tolerance", d)
		}
	}
}

func TestSaveMissingDirWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if _, err := Save(dir, testImage()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Save error = %v, want not-exist", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output dir was created: %v", err)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, PNGName)
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Save(dir, testImage()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("overwritten png does not decode: %v", err)
	}
}
