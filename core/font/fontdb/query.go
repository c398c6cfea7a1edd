package fontdb

import (
	"strings"

	"github.com/npillmayer/typeface/core/font"
)

// --- Querying --------------------------------------------------------------

// Query finds the best face for an ordered family preference list and
// the given weight/stretch/style. Families are tried in order; the first
// family with at least one loaded face decides, using CSS font-matching
// proximity (stretch, then style, then weight). Generic families resolve
// through the database's bindings.
func (db *Database) Query(families []font.Family, weight font.Weight,
	stretch font.Stretch, style font.Style) (font.FaceID, bool) {
	//
	db.mu.Lock()
	defer db.mu.Unlock()
	for _, fam := range families {
		name := db.resolveGeneric(fam)
		candidates := db.facesForFamily(name)
		if len(candidates) == 0 {
			continue
		}
		best := matchBest(db.faces, candidates, weight, stretch, style)
		return db.faces[best].info.ID, true
	}
	return 0, false
}

func (db *Database) resolveGeneric(fam font.Family) string {
	switch fam.Generic {
	case font.Serif:
		return db.serif
	case font.SansSerif:
		return db.sansSerif
	case font.Cursive:
		return db.cursive
	case font.Fantasy:
		return db.fantasy
	case font.Monospace:
		return db.monospace
	}
	return fam.Name
}

func (db *Database) facesForFamily(name string) []int {
	node, ok := db.index.Find(strings.ToLower(name))
	if !ok {
		return nil
	}
	return node.Meta().([]int)
}

// --- CSS font matching -----------------------------------------------------

// matchBest narrows a candidate set of one family down to a single face,
// by stretch distance, then slant preference, then weight distance, as
// CSS font matching prescribes.
func matchBest(faces []faceEntry, candidates []int, weight font.Weight,
	stretch font.Stretch, style font.Style) int {
	//
	candidates = narrowByStretch(faces, candidates, stretch)
	candidates = narrowByStyle(faces, candidates, style)
	candidates = narrowByWeight(faces, candidates, weight)
	return candidates[0]
}

// narrowByStretch keeps the faces with the closest width class. Desired
// widths at or below normal prefer narrower faces, wider ones prefer
// wider faces.
func narrowByStretch(faces []faceEntry, candidates []int, stretch font.Stretch) []int {
	if kept := keep(faces, candidates, func(e faceEntry) bool {
		return e.info.Stretch == stretch
	}); len(kept) > 0 {
		return kept
	}
	var below, above font.Stretch // nearest on either side, 0 = none
	for _, i := range candidates {
		s := faces[i].info.Stretch
		if s < stretch && s > below {
			below = s
		}
		if s > stretch && (above == 0 || s < above) {
			above = s
		}
	}
	want := below
	if stretch <= font.StretchNormal {
		if want == 0 {
			want = above
		}
	} else {
		want = above
		if want == 0 {
			want = below
		}
	}
	return keep(faces, candidates, func(e faceEntry) bool {
		return e.info.Stretch == want
	})
}

// narrowByStyle keeps the faces with the most preferred slant. Italic
// falls back to oblique, oblique to italic, and both to normal; a normal
// request prefers oblique over italic as substitute.
func narrowByStyle(faces []faceEntry, candidates []int, style font.Style) []int {
	var order []font.Style
	switch style {
	case font.StyleItalic:
		order = []font.Style{font.StyleItalic, font.StyleOblique, font.StyleNormal}
	case font.StyleOblique:
		order = []font.Style{font.StyleOblique, font.StyleItalic, font.StyleNormal}
	default:
		order = []font.Style{font.StyleNormal, font.StyleOblique, font.StyleItalic}
	}
	for _, s := range order {
		if kept := keep(faces, candidates, func(e faceEntry) bool {
			return e.info.Style == s
		}); len(kept) > 0 {
			return kept
		}
	}
	return candidates
}

// narrowByWeight keeps the faces with the closest weight. Desired
// weights of 400 and 500 may borrow from each other first; otherwise
// weights at or below the desired one are preferred for light requests,
// weights above for bold requests.
func narrowByWeight(faces []faceEntry, candidates []int, weight font.Weight) []int {
	hasWeight := func(w font.Weight) bool {
		for _, i := range candidates {
			if faces[i].info.Weight == w {
				return true
			}
		}
		return false
	}
	if hasWeight(weight) {
		return keep(faces, candidates, func(e faceEntry) bool {
			return e.info.Weight == weight
		})
	}
	if weight >= 400 && weight < 450 && hasWeight(500) {
		weight = 500
	} else if weight >= 450 && weight <= 500 && hasWeight(400) {
		weight = 400
	} else {
		var below, above font.Weight
		for _, i := range candidates {
			w := faces[i].info.Weight
			if w < weight && w > below {
				below = w
			}
			if w > weight && (above == 0 || w < above) {
				above = w
			}
		}
		if weight <= 500 {
			weight = below
			if weight == 0 {
				weight = above
			}
		} else {
			weight = above
			if weight == 0 {
				weight = below
			}
		}
	}
	want := weight
	return keep(faces, candidates, func(e faceEntry) bool {
		return e.info.Weight == want
	})
}

func keep(faces []faceEntry, candidates []int, pred func(faceEntry) bool) []int {
	var kept []int
	for _, i := range candidates {
		if pred(faces[i]) {
			kept = append(kept, i)
		}
	}
	return kept
}
