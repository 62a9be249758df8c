package vgcanvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for font handling and the text path.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("vgcanvas: empty font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("vgcanvas: invalid font data")

	// ErrNilFace is returned when a text operation is given a nil font face.
	ErrNilFace = errors.New("vgcanvas: nil font face")
)

// MissingGlyphError is returned when the glyph engine cannot provide
// metrics for a code unit. The destination surface is left unmodified.
type MissingGlyphError struct {
	Unit uint16
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("vgcanvas: no glyph for code unit %#04x", e.Unit)
}
