/*
Package font selects concrete font faces for symbolic style requests and
derives normalized typographic metrics from raw font files.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" is a family of fonts. An example is "Helvetica".

* A "face" is one concrete variant of a typeface, with a certain weight,
slant and width. An example is "Helvetica Bold Condensed".

* A "pattern" is a symbolic request for a face: an ordered list of family
preferences together with weight, stretch and style. Patterns are what a
document's style system produces; faces are what a rendering pipeline
consumes.

This package sits between the two. It does not store fonts and it does
not parse font binaries itself: both capabilities are injected, as a
Catalog (see sub-package fontdb for a ready-made one) and as a FaceParser
(see sub-package opentype). Face selection assembles catalog queries and
searches for glyph-coverage fallbacks; metric resolution turns a face
into a ResolvedFont record, substituting documented heuristics for
metrics a font file does not carry. Shaping, line breaking and outline
extraction are left to downstream stages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeface.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typeface.fonts")
}
