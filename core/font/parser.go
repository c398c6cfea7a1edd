package font

// --- Parser capability -----------------------------------------------------

// GlyphID indexes a glyph within a face. Glyph 0 is the .notdef glyph
// and never returned by FaceView.GlyphIndex.
type GlyphID uint16

// UnderlineMetrics carries a face's underline design values in font
// units. Position is the offset of the underline's top from the
// baseline, negative below.
type UnderlineMetrics struct {
	Position  int16
	Thickness int16
}

// FaceView is a read-only view on the typographic tables of a parsed
// face. Metrics a face does not carry report ok == false; the metric
// resolver substitutes heuristics for them.
//
// All values are in font units.
type FaceView interface {
	UnitsPerEm() uint16
	Ascender() int16
	Descender() int16
	XHeight() (int16, bool)
	StrikeoutPosition() (int16, bool)
	Underline() (UnderlineMetrics, bool)
	SubscriptOffset() (int16, bool)
	SuperscriptOffset() (int16, bool)

	// GlyphIndex maps a character to its glyph. ok is false if the face
	// has no glyph for r.
	GlyphIndex(r rune) (GlyphID, bool)
}

// FaceParser parses raw font bytes into a FaceView. faceIndex selects a
// face within a collection file; it is 0 for single-face files.
//
// Package opentype provides an implementation backed by an SFNT parser.
type FaceParser interface {
	Parse(data []byte, faceIndex int) (FaceView, error)
}
