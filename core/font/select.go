package font

// --- Primary face selection ------------------------------------------------

// FindPrimaryFace maps a symbolic pattern to the best-matching face of a
// catalog. The pattern's family preferences are tried in order; a
// generic serif family is always appended as a last resort, so that a
// catalog containing any serif binding can satisfy every pattern.
//
// Zero-valued Weight and Stretch in the pattern are normalized to
// WeightNormal and StretchNormal before querying.
//
// If the catalog cannot satisfy the pattern at all, ok is false and a
// warning naming all requested families is emitted to the trace; the
// caller decides how to proceed.
func FindPrimaryFace(cat Catalog, pat Pattern) (id FaceID, ok bool) {
	families := make([]Family, 0, len(pat.Families)+1)
	families = append(families, pat.Families...)
	families = append(families, Serif.AsFamily())
	weight := pat.Weight
	if weight == 0 {
		weight = WeightNormal
	}
	stretch := pat.Stretch
	if stretch == 0 {
		stretch = StretchNormal
	}
	id, ok = cat.Query(families, weight, stretch, pat.Style)
	if !ok {
		tracer().Errorf("no match for '%s' font-family", pat.FamilyString())
	}
	return id, ok
}

// --- Fallback face selection -----------------------------------------------

// FindFallbackFace searches the catalog for a face that covers character
// c, to substitute for a base face lacking a glyph for it. Candidates
// are scanned in the catalog's enumeration order; faces listed in used
// are skipped, as is the base face itself.
//
// A candidate must be style-compatible with the base face and must have
// a glyph for c. The first such face wins and a notice is traced.
func FindFallbackFace(cat Catalog, parser FaceParser, c rune, baseID FaceID, used UsedFaces) (id FaceID, ok bool) {
	base, ok := cat.FaceInfo(baseID)
	if !ok {
		return 0, false
	}
	for _, face := range cat.Faces() {
		if face.ID == baseID || used.Contains(face.ID) {
			continue
		}
		// Accept a candidate if at least one of style, weight and stretch
		// agrees with the base face. This is deliberately weaker than an
		// exact match and admits e.g. a bold-condensed substitute for an
		// italic base; see DESIGN.md before tightening it.
		if face.Style != base.Style && face.Weight != base.Weight && face.Stretch != base.Stretch {
			continue
		}
		if !coversChar(cat, parser, face.ID, c) {
			continue
		}
		tracer().Infof("fallback from %q to %q", base.PreferredName(), face.PreferredName())
		return face.ID, true
	}
	return 0, false
}

// coversChar checks whether a face has a glyph for c, parsing the face
// within the catalog's scoped byte access. Unparsable faces count as not
// covering.
func coversChar(cat Catalog, parser FaceParser, id FaceID, c rune) bool {
	covers := false
	cat.WithFaceData(id, func(data []byte, faceIndex int) {
		view, err := parser.Parse(data, faceIndex)
		if err != nil {
			return
		}
		_, covers = view.GlyphIndex(c)
	})
	return covers
}
