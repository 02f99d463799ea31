package render

import (
	"fmt"

	"github.com/spf13/afero"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace loads a TrueType face from path. An empty path returns the
// built-in 7x13 bitmap face.
func LoadFace(fsys afero.Fs, path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to create face from %s: %w", path, err)
	}
	return face, nil
}
