// Package blend implements the Porter-Duff compositing operators used by
// the canvas: Src, SrcOver, DstIn and DstOut.
//
// All operations work on premultiplied alpha channels in the range 0-255.
package blend

// Mode represents a Porter-Duff compositing operation.
type Mode uint8

const (
	// Src replaces the destination with the source.
	Src Mode = iota
	// SrcOver composites source over destination: S + D*(1-Sa).
	SrcOver
	// DstIn keeps destination inside the source: D*Sa.
	DstIn
	// DstOut keeps destination outside the source: D*(1-Sa).
	DstOut
)

// Composite applies the operator to one premultiplied source/destination
// pair and folds in 0-255 coverage: the result is the destination where
// coverage is 0, the full operator result where coverage is 255, and a
// linear mix between the two in the anti-aliased fringe.
func Composite(mode Mode, sr, sg, sb, sa, dr, dg, db, da, cov uint8) (r, g, b, a uint8) {
	if cov == 0 {
		return dr, dg, db, da
	}

	var or, og, ob, oa uint8
	switch mode {
	case Src:
		or, og, ob, oa = sr, sg, sb, sa
	case SrcOver:
		invSa := 255 - sa
		or = addClamp(sr, mulDiv255(dr, invSa))
		og = addClamp(sg, mulDiv255(dg, invSa))
		ob = addClamp(sb, mulDiv255(db, invSa))
		oa = addClamp(sa, mulDiv255(da, invSa))
	case DstIn:
		or = mulDiv255(dr, sa)
		og = mulDiv255(dg, sa)
		ob = mulDiv255(db, sa)
		oa = mulDiv255(da, sa)
	case DstOut:
		invSa := 255 - sa
		or = mulDiv255(dr, invSa)
		og = mulDiv255(dg, invSa)
		ob = mulDiv255(db, invSa)
		oa = mulDiv255(da, invSa)
	}

	if cov == 255 {
		return or, og, ob, oa
	}
	return lerp(dr, or, cov), lerp(dg, og, cov), lerp(db, ob, cov), lerp(da, oa, cov)
}

// mulDiv255 computes a*b/255 with rounding.
func mulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + t>>8) >> 8)
}

// addClamp adds two channels, clamping at 255.
func addClamp(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// lerp mixes d toward o by t/255.
func lerp(d, o, t uint8) uint8 {
	return uint8(int32(d) + (int32(o)-int32(d))*int32(t)/255)
}
