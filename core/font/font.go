package font

import "strings"

// --- Symbolic style properties ---------------------------------------------

// Style denotes the slant of a face.
type Style uint8

// Face slants, default is StyleNormal.
const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	}
	return "normal"
}

// Weight denotes the boldness of a face, on the usual 100…900 scale.
type Weight uint16

// Commonly used weights. The scale is open; any value in 1…1000 is legal.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Stretch denotes the width class of a face, on the OpenType 1…9 scale.
type Stretch uint8

// Width classes, default is StretchNormal.
const (
	StretchUltraCondensed Stretch = 1
	StretchExtraCondensed Stretch = 2
	StretchCondensed      Stretch = 3
	StretchSemiCondensed  Stretch = 4
	StretchNormal         Stretch = 5
	StretchSemiExpanded   Stretch = 6
	StretchExpanded       Stretch = 7
	StretchExtraExpanded  Stretch = 8
	StretchUltraExpanded  Stretch = 9
)

// --- Families and patterns -------------------------------------------------

// GenericFamily is one of the symbolic font families which every catalog
// resolves to a concrete family of its choosing.
type GenericFamily uint8

// Generic families. The zero value marks a Family as a named one.
const (
	noGenericFamily GenericFamily = iota
	Serif
	SansSerif
	Cursive
	Fantasy
	Monospace
)

func (g GenericFamily) String() string {
	switch g {
	case Serif:
		return "serif"
	case SansSerif:
		return "sans-serif"
	case Cursive:
		return "cursive"
	case Fantasy:
		return "fantasy"
	case Monospace:
		return "monospace"
	}
	return "<no generic family>"
}

// AsFamily wraps a generic family for use in a pattern's family list.
func (g GenericFamily) AsFamily() Family {
	return Family{Generic: g}
}

// Family is a single entry of a pattern's family preference list: either
// a named typeface family or a generic one.
type Family struct {
	Name    string
	Generic GenericFamily
}

// NamedFamily creates a family entry for a concrete typeface name.
func NamedFamily(name string) Family {
	return Family{Name: name}
}

// IsGeneric is true for generic family entries.
func (f Family) IsGeneric() bool {
	return f.Generic != noGenericFamily
}

func (f Family) String() string {
	if f.IsGeneric() {
		return f.Generic.String()
	}
	return f.Name
}

// Pattern is a symbolic request for a face: an ordered list of family
// preferences plus weight, stretch and style.
//
// Zero-valued Weight and Stretch fields are treated as WeightNormal and
// StretchNormal by the selector, so a Pattern may be built field by field
// without caring about defaults.
type Pattern struct {
	Families []Family
	Weight   Weight
	Stretch  Stretch
	Style    Style
}

// FamilyString joins the pattern's family preferences into a single
// comma-separated string, suitable for diagnostics.
func (p Pattern) FamilyString() string {
	names := make([]string, len(p.Families))
	for i, f := range p.Families {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
