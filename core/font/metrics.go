package font

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/typeface/core"
)

// --- Metric resolution errors ----------------------------------------------

// Errors reported by ResolveFont, wrapped in a core.AppError carrying an
// error code. Test with errors.Is.
var (
	// ErrFaceParse signals that the face's bytes could not be parsed.
	ErrFaceParse = errors.New("font face unparsable")
	// ErrMetricRange signals a metric outside its representable range,
	// including a units-per-em of zero.
	ErrMetricRange = errors.New("font metric out of range")
)

// Fallback factors for faces lacking subscript/superscript tables: the
// baseline offset is derived as upem divided by the factor. Dividing by
// a factor below one inflates the offset well beyond the em square,
// which looks wrong but matches long-standing renderer behavior, so it
// stays the default; see DESIGN.md. Override before resolving to get
// conventional offsets.
var (
	SubscriptFallbackFactor   = 0.2
	SuperscriptFallbackFactor = 0.4
)

// --- ResolvedFont ----------------------------------------------------------

// ResolvedFont is the complete metric record for a face, every field
// populated: values a face file does not carry are derived with
// documented heuristics during resolution. All values are in font units;
// the Scaled… methods convert to a concrete size.
type ResolvedFont struct {
	ID                  FaceID
	UnitsPerEm          uint16
	Ascent              int16
	Descent             int16
	XHeight             uint16
	UnderlinePosition   int16
	UnderlineThickness  uint16
	LineThroughPosition int16
	SubscriptOffset     int16
	SuperscriptOffset   int16
}

// Scale returns the factor converting font units to a font size in
// arbitrary units (typically points or pixels).
func (rf *ResolvedFont) Scale(size float64) float64 {
	return size / float64(rf.UnitsPerEm)
}

// Height is the design height of the face, ascent minus descent, in
// font units.
func (rf *ResolvedFont) Height() int32 {
	return int32(rf.Ascent) - int32(rf.Descent)
}

// ScaledAscent returns the ascent at a font size.
func (rf *ResolvedFont) ScaledAscent(size float64) float64 {
	return float64(rf.Ascent) * rf.Scale(size)
}

// ScaledDescent returns the descent at a font size.
func (rf *ResolvedFont) ScaledDescent(size float64) float64 {
	return float64(rf.Descent) * rf.Scale(size)
}

// ScaledXHeight returns the x-height at a font size.
func (rf *ResolvedFont) ScaledXHeight(size float64) float64 {
	return float64(rf.XHeight) * rf.Scale(size)
}

// ScaledUnderlinePosition returns the underline position at a font size.
func (rf *ResolvedFont) ScaledUnderlinePosition(size float64) float64 {
	return float64(rf.UnderlinePosition) * rf.Scale(size)
}

// ScaledUnderlineThickness returns the underline thickness at a font size.
func (rf *ResolvedFont) ScaledUnderlineThickness(size float64) float64 {
	return float64(rf.UnderlineThickness) * rf.Scale(size)
}

// ScaledLineThroughPosition returns the strike-through position at a
// font size.
func (rf *ResolvedFont) ScaledLineThroughPosition(size float64) float64 {
	return float64(rf.LineThroughPosition) * rf.Scale(size)
}

// ScaledSubscriptOffset returns the subscript baseline offset at a font
// size.
func (rf *ResolvedFont) ScaledSubscriptOffset(size float64) float64 {
	return float64(rf.SubscriptOffset) * rf.Scale(size)
}

// ScaledSuperscriptOffset returns the superscript baseline offset at a
// font size.
func (rf *ResolvedFont) ScaledSuperscriptOffset(size float64) float64 {
	return float64(rf.SuperscriptOffset) * rf.Scale(size)
}

// --- Metric resolution -----------------------------------------------------

// ResolveFont loads a face's bytes through the catalog's scoped access,
// parses its typographic tables and produces the complete metric record.
// Resolution is all or nothing: on any parse failure or unrepresentable
// metric an error is returned and no partial record escapes.
//
// Derivation rules for absent or degenerate metrics:
//   - x-height: the face's value if present and positive, otherwise
//     round((ascent − descent) × 0.45).
//   - strike-through position: the face's value if present, otherwise
//     half the x-height.
//   - underline: the face's position/thickness if present, with a
//     non-positive thickness replaced by upem/12; without an underline
//     table, position −upem/9 and thickness upem/12.
//   - subscript/superscript offsets: round(upem / factor) with the
//     package-level fallback factors, overridden by the face's tables
//     when present.
func ResolveFont(cat Catalog, parser FaceParser, id FaceID) (*ResolvedFont, error) {
	var rf *ResolvedFont
	var err error
	found := cat.WithFaceData(id, func(data []byte, faceIndex int) {
		rf, err = resolveFromData(parser, id, data, faceIndex)
	})
	if !found {
		return nil, core.Error(core.EMISSING, "no face data for face #%d", id)
	}
	return rf, err
}

func resolveFromData(parser FaceParser, id FaceID, data []byte, faceIndex int) (*ResolvedFont, error) {
	view, err := parser.Parse(data, faceIndex)
	if err != nil {
		return nil, core.WrapError(fmt.Errorf("%w: %v", ErrFaceParse, err), core.EINVALID,
			"face #%d does not parse", id)
	}
	upem := view.UnitsPerEm()
	if upem == 0 {
		return nil, metricRangeError(id, "units-per-em is zero")
	}
	ascent := view.Ascender()
	descent := view.Descender()

	var xheight uint16
	if xh, ok := view.XHeight(); ok && xh > 0 {
		xheight = uint16(xh)
	} else {
		derived := math.Round(float64(int32(ascent)-int32(descent)) * 0.45)
		if derived <= 0 || derived > math.MaxUint16 {
			return nil, metricRangeError(id, "derived x-height %g", derived)
		}
		xheight = uint16(derived)
	}

	strikeout, ok := view.StrikeoutPosition()
	if !ok {
		strikeout = int16(xheight / 2)
	}

	var ulPos int16
	var ulThick uint16
	if ul, ok := view.Underline(); ok {
		ulPos = ul.Position
		if ul.Thickness > 0 {
			ulThick = uint16(ul.Thickness)
		} else {
			ulThick = upem / 12
		}
	} else {
		ulPos = -int16(upem / 9)
		ulThick = upem / 12
	}
	if ulThick == 0 {
		return nil, metricRangeError(id, "underline thickness is zero")
	}

	subOff := offsetFallback(upem, SubscriptFallbackFactor)
	if off, ok := view.SubscriptOffset(); ok {
		subOff = off
	}
	superOff := offsetFallback(upem, SuperscriptFallbackFactor)
	if off, ok := view.SuperscriptOffset(); ok {
		superOff = off
	}

	return &ResolvedFont{
		ID:                  id,
		UnitsPerEm:          upem,
		Ascent:              ascent,
		Descent:             descent,
		XHeight:             xheight,
		UnderlinePosition:   ulPos,
		UnderlineThickness:  ulThick,
		LineThroughPosition: strikeout,
		SubscriptOffset:     subOff,
		SuperscriptOffset:   superOff,
	}, nil
}

// offsetFallback derives a baseline offset as upem/factor, saturated to
// the int16 range of the font-unit fields.
func offsetFallback(upem uint16, factor float64) int16 {
	off := math.Round(float64(upem) / factor)
	if off > math.MaxInt16 {
		return math.MaxInt16
	}
	if off < math.MinInt16 {
		return math.MinInt16
	}
	return int16(off)
}

func metricRangeError(id FaceID, format string, v ...interface{}) error {
	return core.WrapError(ErrMetricRange, core.EINVALID,
		"face #%d: "+format, append([]interface{}{id}, v...)...)
}
