package font

import "golang.org/x/text/language"

// --- Catalog capability ----------------------------------------------------

// FaceID identifies a face within a catalog. IDs are opaque to this
// package; a catalog assigns them and keeps them stable for its lifetime.
type FaceID uint32

// FamilyName is one family name of a face, tagged with the language the
// name record is written in.
type FamilyName struct {
	Name string
	Lang language.Tag
}

// FaceInfo is a catalog's descriptor for a single face.
type FaceInfo struct {
	ID       FaceID
	Families []FamilyName
	Style    Style
	Weight   Weight
	Stretch  Stretch
}

// PreferredName returns the face's U.S.-English family name if the face
// carries one, otherwise its first family name. Faces without any family
// name yield "".
func (info FaceInfo) PreferredName() string {
	for _, fam := range info.Families {
		if fam.Lang == language.AmericanEnglish {
			return fam.Name
		}
	}
	if len(info.Families) > 0 {
		return info.Families[0].Name
	}
	return ""
}

// Catalog is the face-store capability consumed by the selector and the
// metric resolver. Package fontdb provides an implementation; clients
// with their own font management plug in here.
type Catalog interface {
	// Query finds the best face for an ordered family preference list and
	// the given weight/stretch/style, using the catalog's own proximity
	// rules. ok is false if no loaded face matches any listed family.
	Query(families []Family, weight Weight, stretch Stretch, style Style) (id FaceID, ok bool)

	// Faces enumerates the descriptors of all loaded faces. The order is
	// stable for the lifetime of the catalog.
	Faces() []FaceInfo

	// FaceInfo returns the descriptor for a single face.
	FaceInfo(id FaceID) (FaceInfo, bool)

	// WithFaceData calls f with the face's raw bytes and its index within
	// the (possibly multi-face) font file. The slice is only valid for the
	// duration of the call; f must not retain it. Returns false if the
	// face is unknown, in which case f is not called.
	WithFaceData(id FaceID, f func(data []byte, faceIndex int)) bool
}

// --- Used-face bookkeeping -------------------------------------------------

// UsedFaces tracks faces already employed for a text run, so that
// fallback search does not bounce between faces which already failed to
// cover a character.
type UsedFaces map[FaceID]struct{}

// Add marks a face as used.
func (u UsedFaces) Add(id FaceID) {
	u[id] = struct{}{}
}

// Contains is true if a face has been marked as used.
func (u UsedFaces) Contains(id FaceID) bool {
	_, ok := u[id]
	return ok
}
