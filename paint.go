package vgcanvas

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd (crossing parity) rule.
	FillRuleEvenOdd
)

// BlendMode selects the Porter-Duff compositing operator for a draw call.
type BlendMode int

const (
	// BlendSrc replaces the destination with the source.
	BlendSrc BlendMode = iota
	// BlendSrcOver composites the source over the destination (default).
	BlendSrcOver
	// BlendDstIn keeps destination where the source is opaque.
	BlendDstIn
	// BlendDstOut keeps destination where the source is transparent.
	BlendDstOut
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// SpreadMethod defines gradient behavior outside the [0, 1] offset range.
type SpreadMethod int

const (
	// SpreadPad clamps to the edge colors.
	SpreadPad SpreadMethod = iota
	// SpreadReflect mirrors the gradient.
	SpreadReflect
	// SpreadRepeat tiles the gradient.
	SpreadRepeat
)

// TextureType selects how a texture brush samples outside its source.
type TextureType int

const (
	// TexturePlain is transparent outside the source surface.
	TexturePlain TextureType = iota
	// TextureTiled wraps around the source surface.
	TextureTiled
)

// GradientStop is a color at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// GradientStops is an ordered stop sequence. Stops are sampled in the
// order given and are expected to be non-decreasing by offset; they are
// never reordered here, so unsorted input renders deterministically but
// not meaningfully.
type GradientStops []GradientStop

// Dash defines a dash pattern for stroking: a starting offset into the
// pattern cycle and alternating dash/gap lengths. A nil Dash or an empty
// array means a solid stroke.
type Dash struct {
	Array  []float64
	Offset float64
}

// IsDashed reports whether the pattern produces a dashed (not solid) line.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// effectiveArray returns the dash array with odd-length arrays doubled so
// the pattern always alternates dash/gap over a full cycle.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// normalizedOffset returns the offset reduced into one pattern cycle.
func (d *Dash) normalizedOffset() float64 {
	arr := d.effectiveArray()
	var total float64
	for _, l := range arr {
		total += l
	}
	if total <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, total)
	if offset < 0 {
		offset += total
	}
	return offset
}

// Stroke bundles the stroke style for one draw call.
type Stroke struct {
	// Width is the line width in user-space units.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit converts miter joins to bevels past this ratio.
	MiterLimit float64

	// Dash is the dash pattern. nil means a solid line.
	Dash *Dash
}

// DefaultStroke returns a solid 1-unit stroke with butt caps and miter
// joins, matching the SVG defaults.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Paint is the complete, immutable paint state for a single draw call:
// what to paint with, how to composite it, and at what opacity. Every
// fill, stroke and blend call receives its own Paint; no paint state is
// retained between calls.
type Paint struct {
	Brush   Brush
	Mode    BlendMode
	Opacity float64
}

// SolidPaint returns a source-over, full-opacity paint for a color.
func SolidPaint(c Color) Paint {
	return Paint{
		Brush:   NewSolidBrush(c),
		Mode:    BlendSrcOver,
		Opacity: 1,
	}
}

// opacity8 returns the paint opacity as an 8-bit factor, clamped to [0, 1].
func (p Paint) opacity8() uint8 {
	op := p.Opacity
	if op < 0 {
		op = 0
	}
	if op > 1 {
		op = 1
	}
	return uint8(math.Round(op * 255))
}
