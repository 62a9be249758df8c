package vgcanvas

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"

	tfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/unicode"
)

// Text is rendered at a fixed size: 12 points at 100 dpi.
const (
	textPointSize = 12
	textDPI       = 100
)

// FontFace is a parsed font ready for text rendering. A face is not
// safe for concurrent use; the underlying glyph engine reuses internal
// buffers.
type FontFace struct {
	family string
	upem   uint16
	sfnt   *sfnt.Font
	face   xfont.Face
	buf    sfnt.Buffer
}

// NewFontFace parses TTF/OTF font data. The data is retained by the
// returned face.
func NewFontFace(data []byte) (*FontFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := tfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    textPointSize,
		DPI:     textDPI,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return &FontFace{
		family: parsed.Describe().Family,
		upem:   parsed.Upem(),
		sfnt:   sf,
		face:   face,
	}, nil
}

// Family returns the font's family name.
func (f *FontFace) Family() string { return f.family }

// UnitsPerEm returns the font's design units per em.
func (f *FontFace) UnitsPerEm() uint16 { return f.upem }

// Close releases the face's glyph engine resources.
func (f *FontFace) Close() error {
	return f.face.Close()
}

// glyphBitmap is one glyph's coverage bitmap and placement, captured
// from the glyph engine before layout.
type glyphBitmap struct {
	left    int // horizontal bearing from the pen position
	top     int // vertical offset from the pen position (negative above)
	width   int
	height  int
	advance int
	alpha   []byte // width*height coverage values
}

// Text renders a string onto the canvas with its baseline pen starting
// at (x, y) in surface coordinates. Glyphs are rasterized into an
// offscreen coverage buffer sized to the line, then blitted with
// inverted intensity: full coverage paints black, no coverage is left
// untouched. Pixels falling outside the surface are skipped.
//
// The string is processed per UTF-16 code unit; characters outside the
// basic multilingual plane are not supported. A code unit with no
// glyph returns a MissingGlyphError before any pixel is written.
func (c *Canvas) Text(x, y float64, s string, face *FontFace) error {
	if face == nil {
		return ErrNilFace
	}
	units, err := utf16CodeUnits(s)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		return nil
	}

	glyphs := make([]glyphBitmap, 0, len(units))
	lineWidth := 0
	lineHeight := 0
	for _, unit := range units {
		g, err := face.glyph(unit)
		if err != nil {
			return err
		}
		lineWidth += g.advance
		if g.height > lineHeight {
			lineHeight = g.height
		}
		glyphs = append(glyphs, g)
	}
	if lineWidth <= 0 || lineHeight <= 0 {
		return nil
	}

	// Single contiguous coverage buffer for the whole line; overlapping
	// glyphs combine with a bytewise OR, matching the historical
	// renderer rather than saturating addition.
	cov := make([]byte, lineWidth*lineHeight)
	penX := 0
	penY := lineHeight
	for _, g := range glyphs {
		gx := penX + g.left
		gy := penY + g.top
		for j := 0; j < g.height; j++ {
			by := gy + j
			if by < 0 || by >= lineHeight {
				continue
			}
			for i := 0; i < g.width; i++ {
				bx := gx + i
				if bx < 0 || bx >= lineWidth {
					continue
				}
				cov[by*lineWidth+bx] |= g.alpha[j*g.width+i]
			}
		}
		penX += g.advance
	}

	Logger().Debug("text line rasterized",
		"units", len(units),
		"width", lineWidth,
		"height", lineHeight)

	rx := int(math.Round(x))
	ry := int(math.Round(y)) - textPointSize
	for j := 0; j < lineHeight; j++ {
		for i := 0; i < lineWidth; i++ {
			v := cov[j*lineWidth+i]
			if v == 0 {
				continue
			}
			inv := 255 - v
			c.surface.SetPixel(rx+i, ry+j, NewPixel(inv, inv, inv, 255))
		}
	}
	return nil
}

// glyph rasterizes one code unit's glyph at the face's fixed size and
// copies its coverage out of the engine's reusable mask buffer.
func (f *FontFace) glyph(unit uint16) (glyphBitmap, error) {
	// Check the cmap explicitly: the rendering face falls back to the
	// .notdef glyph instead of failing.
	idx, err := f.sfnt.GlyphIndex(&f.buf, rune(unit))
	if err != nil || idx == 0 {
		return glyphBitmap{}, &MissingGlyphError{Unit: unit}
	}

	dot := fixed.Point26_6{}
	dr, mask, maskp, advance, ok := f.face.Glyph(dot, rune(unit))
	if !ok {
		return glyphBitmap{}, &MissingGlyphError{Unit: unit}
	}

	g := glyphBitmap{
		left:    dr.Min.X,
		top:     dr.Min.Y,
		width:   dr.Dx(),
		height:  dr.Dy(),
		advance: int(advance) >> 6,
	}
	g.alpha = make([]byte, g.width*g.height)
	if am, isAlpha := mask.(*image.Alpha); isAlpha {
		for j := 0; j < g.height; j++ {
			src := am.Pix[(maskp.Y+j-am.Rect.Min.Y)*am.Stride+(maskp.X-am.Rect.Min.X):]
			copy(g.alpha[j*g.width:(j+1)*g.width], src[:g.width])
		}
	} else {
		for j := 0; j < g.height; j++ {
			for i := 0; i < g.width; i++ {
				a := color.AlphaModel.Convert(mask.At(maskp.X+i, maskp.Y+j)).(color.Alpha)
				g.alpha[j*g.width+i] = a.A
			}
		}
	}
	return g, nil
}

// utf16CodeUnits encodes a string as little-endian UTF-16 code units.
func utf16CodeUnits(s string) ([]uint16, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("vgcanvas: encoding text: %w", err)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return units, nil
}
