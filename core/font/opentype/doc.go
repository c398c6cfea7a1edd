/*
Package opentype adapts an SFNT parser to the capability interfaces of
package font. It provides a FaceParser over TrueType and OpenType font
files (including TrueType collections), and the face classification used
by package fontdb to index loaded fonts.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package opentype

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeface.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typeface.fonts")
}
