package opentype

import (
	"encoding/binary"

	sfnt "github.com/tdewolff/font"
	"golang.org/x/text/language"

	"github.com/npillmayer/typeface/core/font"
)

// --- FaceParser implementation ---------------------------------------------

// Parser parses TrueType and OpenType faces. It implements
// font.FaceParser; the zero value is ready to use.
type Parser struct{}

var _ font.FaceParser = Parser{}

// Parse parses a face from raw font bytes. faceIndex selects a face
// within a TrueType collection and must be 0 for single-face files.
func (Parser) Parse(data []byte, faceIndex int) (font.FaceView, error) {
	f, err := sfnt.ParseFont(data, faceIndex)
	if err != nil {
		return nil, err
	}
	return faceView{f}, nil
}

// NumFaces reports the number of faces in a font file: the collection
// entry count for TrueType collections, 1 otherwise.
func NumFaces(data []byte) int {
	if len(data) < 12 || string(data[:4]) != "ttcf" {
		return 1
	}
	return int(binary.BigEndian.Uint32(data[8:12]))
}

// --- FaceView implementation -----------------------------------------------

// faceView exposes the typographic tables of a parsed SFNT. Optional
// metrics report absence when the backing table is missing; the x-height
// additionally requires an OS/2 table of version 2 or later, as earlier
// versions predate the sxHeight field.
type faceView struct {
	f *sfnt.SFNT
}

func (v faceView) UnitsPerEm() uint16 {
	return v.f.Head.UnitsPerEm
}

func (v faceView) Ascender() int16 {
	return v.f.Hhea.Ascender
}

func (v faceView) Descender() int16 {
	return v.f.Hhea.Descender
}

func (v faceView) XHeight() (int16, bool) {
	if v.f.OS2 == nil || v.f.OS2.Version < 2 {
		return 0, false
	}
	return v.f.OS2.SxHeight, true
}

func (v faceView) StrikeoutPosition() (int16, bool) {
	if v.f.OS2 == nil {
		return 0, false
	}
	return v.f.OS2.YStrikeoutPosition, true
}

func (v faceView) Underline() (font.UnderlineMetrics, bool) {
	if v.f.Post == nil {
		return font.UnderlineMetrics{}, false
	}
	return font.UnderlineMetrics{
		Position:  v.f.Post.UnderlinePosition,
		Thickness: v.f.Post.UnderlineThickness,
	}, true
}

func (v faceView) SubscriptOffset() (int16, bool) {
	if v.f.OS2 == nil {
		return 0, false
	}
	return v.f.OS2.YSubscriptYOffset, true
}

func (v faceView) SuperscriptOffset() (int16, bool) {
	if v.f.OS2 == nil {
		return 0, false
	}
	return v.f.OS2.YSuperscriptYOffset, true
}

func (v faceView) GlyphIndex(r rune) (font.GlyphID, bool) {
	gid := v.f.GlyphIndex(r)
	if gid == 0 {
		return 0, false
	}
	return font.GlyphID(gid), true
}

// --- Face classification ---------------------------------------------------

// ClassifyFace parses a face and extracts the attributes a catalog
// indexes it under: family names with language tags, slant, weight and
// width class. Used by package fontdb during loading.
func ClassifyFace(data []byte, faceIndex int) (font.FaceInfo, error) {
	f, err := sfnt.ParseFont(data, faceIndex)
	if err != nil {
		return font.FaceInfo{}, err
	}
	info := font.FaceInfo{
		Families: familyNames(f),
		Style:    classifyStyle(f),
		Weight:   classifyWeight(f),
		Stretch:  classifyStretch(f),
	}
	if len(info.Families) == 0 {
		tracer().Debugf("face #%d carries no family name", faceIndex)
	}
	return info, nil
}

// familyNames collects the face's family names, preferring the
// typographic family (name ID 16) over the legacy family (name ID 1).
// Duplicate (name, language) pairs are dropped.
func familyNames(f *sfnt.SFNT) []font.FamilyName {
	records := f.Name.Get(sfnt.NamePreferredFamily)
	if len(records) == 0 {
		records = f.Name.Get(sfnt.NameFontFamily)
	}
	var names []font.FamilyName
	seen := map[font.FamilyName]bool{}
	for _, rec := range records {
		name := font.FamilyName{
			Name: rec.String(),
			Lang: recordLanguage(rec.Platform, rec.Language),
		}
		if name.Name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// recordLanguage maps a name record's platform language ID to a language
// tag. Only Windows records carry IDs we can interpret; everything else
// is und.
func recordLanguage(platform sfnt.PlatformID, langID uint16) language.Tag {
	if platform != sfnt.PlatformWindows {
		return language.Und
	}
	switch langID {
	case 0x0409:
		return language.AmericanEnglish
	case 0x0809:
		return language.BritishEnglish
	}
	switch langID & 0x00ff {
	case 0x09:
		return language.English
	case 0x07:
		return language.German
	case 0x0c:
		return language.French
	case 0x0a:
		return language.Spanish
	case 0x11:
		return language.Japanese
	}
	return language.Und
}

func classifyStyle(f *sfnt.SFNT) font.Style {
	if f.OS2 != nil {
		if f.OS2.FsSelection&0x0200 != 0 {
			return font.StyleOblique
		}
		if f.OS2.FsSelection&0x0001 != 0 {
			return font.StyleItalic
		}
	}
	if f.Post != nil && f.Post.ItalicAngle != 0 {
		return font.StyleItalic
	}
	return font.StyleNormal
}

func classifyWeight(f *sfnt.SFNT) font.Weight {
	if f.OS2 == nil || f.OS2.UsWeightClass == 0 {
		return font.WeightNormal
	}
	return font.Weight(f.OS2.UsWeightClass)
}

func classifyStretch(f *sfnt.SFNT) font.Stretch {
	if f.OS2 == nil || f.OS2.UsWidthClass < 1 || 9 < f.OS2.UsWidthClass {
		return font.StretchNormal
	}
	return font.Stretch(f.OS2.UsWidthClass)
}
