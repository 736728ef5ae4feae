package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Point sizes are rendered at 72 DPI, so one point is one pixel.
const fontDPI = 72

// FontSizes holds the point size of every font role.
type FontSizes struct {
	Title    float64
	Subtitle float64
	Small    float64
	URL      float64
}

// DefaultFontSizes are the sizes used by the OG card.
var DefaultFontSizes = FontSizes{Title: 64, Subtitle: 28, Small: 22, URL: 24}

func (s FontSizes) forRole(role FontRole) float64 {
	switch role {
	case FontTitle:
		return s.Title
	case FontSubtitle:
		return s.Subtitle
	case FontSmall:
		return s.Small
	default:
		return s.URL
	}
}

// FontSet holds one face per FontRole. It is immutable once built.
type FontSet struct {
	faces [fontRoleCount]font.Face

	// Fallback reports whether the built-in bitmap font is in use.
	Fallback bool
}

// DefaultFontSet returns a set using basicfont.Face7x13 for every role.
func DefaultFontSet() *FontSet {
	set := &FontSet{Fallback: true}
	for i := range set.faces {
		set.faces[i] = basicfont.Face7x13
	}
	return set
}

// Face returns the face for role, or the bitmap font for unknown roles.
func (set *FontSet) Face(role FontRole) font.Face {
	if set == nil || role < 0 || role >= fontRoleCount || set.faces[role] == nil {
		return basicfont.Face7x13
	}
	return set.faces[role]
}

// Close releases the faces of the set.
func (set *FontSet) Close() error {
	if set == nil {
		return nil
	}
	var errs []error
	for _, face := range set.faces {
		if face == nil {
			continue
		}
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LoadFontSet reads the font file at path and builds faces at sizes.
// Only a missing file falls back to DefaultFontSet; any other read or parse
// error is returned.
func LoadFontSet(path string, sizes FontSizes) (*FontSet, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultFontSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	set, err := ParseFontSet(data, sizes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ParseFontSet builds faces from TrueType, OpenType or collection bytes.
// For collections the first font is used.
func ParseFontSet(data []byte, sizes FontSizes) (*FontSet, error) {
	if isCollection(data) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}
		otFont, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font collection: %w", err)
		}
		return openTypeSet(otFont, sizes)
	}

	// freetype handles plain TrueType; CFF-flavored fonts go through sfnt.
	if ttFont, err := truetype.Parse(data); err == nil {
		set := &FontSet{}
		for role := FontRole(0); role < fontRoleCount; role++ {
			set.faces[role] = truetype.NewFace(ttFont, &truetype.Options{
				Size:    sizes.forRole(role),
				DPI:     fontDPI,
				Hinting: font.HintingFull,
			})
		}
		return set, nil
	}
	otFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return openTypeSet(otFont, sizes)
}

func openTypeSet(otFont *opentype.Font, sizes FontSizes) (*FontSet, error) {
	set := &FontSet{}
	for role := FontRole(0); role < fontRoleCount; role++ {
		face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
			Size:    sizes.forRole(role),
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("create %s face: %w", role, err)
		}
		set.faces[role] = face
	}
	return set, nil
}

// isCollection checks for the "ttcf" TrueType collection tag.
func isCollection(data []byte) bool {
	return bytes.HasPrefix(data, []byte("ttcf"))
}
