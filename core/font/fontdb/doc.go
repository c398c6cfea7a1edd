/*
Package fontdb provides an in-memory font database implementing the
font.Catalog capability. Faces are loaded from byte slices, files,
directories or the platform font folders, classified through the
opentype adapter, and queried with CSS-style font matching: family list
priority first, then width, slant and weight proximity. Generic families
(serif, sans-serif, …) resolve through configurable bindings.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontdb

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typeface.fontdb'
func tracer() tracing.Trace {
	return tracing.Select("typeface.fontdb")
}
