package fontdb

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/npillmayer/typeface/core"
	"github.com/npillmayer/typeface/core/font"
	"github.com/npillmayer/typeface/core/font/opentype"
)

// --- Database --------------------------------------------------------------

// Database is an in-memory font catalog. Faces keep their load order;
// face IDs are assigned sequentially and stay stable for the lifetime of
// the database. A Database is safe for concurrent use.
type Database struct {
	mu        sync.Mutex
	faces     []faceEntry
	index     *trie.Trie // lowercased family name -> []int into faces
	serif     string
	sansSerif string
	cursive   string
	fantasy   string
	monospace string
}

type faceEntry struct {
	info      font.FaceInfo
	data      []byte
	faceIndex int
	source    string // file path, "" for in-memory data
}

// NewDatabase creates an empty font database. The generic families are
// bound to the conventional system families; use the Set…Family methods
// to re-bind them to families actually loaded.
func NewDatabase() *Database {
	return &Database{
		index:     trie.New(),
		serif:     "Times New Roman",
		sansSerif: "Arial",
		cursive:   "Comic Sans MS",
		fantasy:   "Impact",
		monospace: "Courier New",
	}
}

var _ font.Catalog = &Database{}

// SetSerifFamily binds the generic serif family to a concrete family name.
func (db *Database) SetSerifFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.serif = name
}

// SetSansSerifFamily binds the generic sans-serif family to a concrete
// family name.
func (db *Database) SetSansSerifFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.sansSerif = name
}

// SetCursiveFamily binds the generic cursive family to a concrete family
// name.
func (db *Database) SetCursiveFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.cursive = name
}

// SetFantasyFamily binds the generic fantasy family to a concrete family
// name.
func (db *Database) SetFantasyFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fantasy = name
}

// SetMonospaceFamily binds the generic monospace family to a concrete
// family name.
func (db *Database) SetMonospaceFamily(name string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.monospace = name
}

// --- Loading ---------------------------------------------------------------

// LoadFontData loads all faces of an in-memory font file. TrueType
// collections contribute one face per collection entry. Returns the IDs
// of the loaded faces.
func (db *Database) LoadFontData(data []byte) ([]font.FaceID, error) {
	return db.load(data, "")
}

// LoadFontFile loads all faces of a font file.
func (db *Database) LoadFontFile(path string) ([]font.FaceID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	return db.load(data, path)
}

// LoadFontsDir loads every font file in a directory tree, skipping files
// that do not parse. It returns the number of faces loaded.
func (db *Database) LoadFontsDir(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf", ".ttc", ".otc":
		default:
			return nil
		}
		ids, err := db.LoadFontFile(path)
		if err != nil {
			tracer().Debugf("skipping font file %s: %v", path, err)
			return nil
		}
		count += len(ids)
		return nil
	})
	return count
}

// LoadSystemFont locates a font file by name in the platform's font
// directories and loads its faces. fileName is matched against the font
// file names, e.g. "arial.ttf".
func (db *Database) LoadSystemFont(fileName string) ([]font.FaceID, error) {
	path, err := findfont.Find(fileName)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "system font %s not found", fileName)
	}
	return db.LoadFontFile(path)
}

// LoadBuiltinFonts loads the embedded Go fonts (regular, bold, italic
// and mono faces of the Go typeface) and binds the generic serif,
// sans-serif and monospace families to them. This guarantees a non-empty
// catalog without touching the file system.
func (db *Database) LoadBuiltinFonts() error {
	for _, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gomono.TTF} {
		if _, err := db.LoadFontData(data); err != nil {
			return err
		}
	}
	db.SetSerifFamily("Go")
	db.SetSansSerifFamily("Go")
	db.SetMonospaceFamily("Go Mono")
	return nil
}

func (db *Database) load(data []byte, source string) ([]font.FaceID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := opentype.NumFaces(data)
	var ids []font.FaceID
	for i := 0; i < n; i++ {
		info, err := opentype.ClassifyFace(data, i)
		if err != nil {
			if len(ids) > 0 {
				tracer().Debugf("collection face #%d unusable: %v", i, err)
				continue
			}
			return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
		}
		info.ID = font.FaceID(len(db.faces) + 1)
		db.faces = append(db.faces, faceEntry{
			info:      info,
			data:      data,
			faceIndex: i,
			source:    source,
		})
		for _, fam := range info.Families {
			db.indexFamily(fam.Name, len(db.faces)-1)
		}
		ids = append(ids, info.ID)
		tracer().Debugf("loaded face #%d %q (%s, weight %d, stretch %d)",
			info.ID, info.PreferredName(), info.Style, info.Weight, info.Stretch)
	}
	return ids, nil
}

func (db *Database) indexFamily(name string, pos int) {
	key := strings.ToLower(name)
	if node, ok := db.index.Find(key); ok {
		db.index.Add(key, append(node.Meta().([]int), pos))
		return
	}
	db.index.Add(key, []int{pos})
}

// --- Catalog capability ----------------------------------------------------

// Faces enumerates all loaded faces in load order.
func (db *Database) Faces() []font.FaceInfo {
	db.mu.Lock()
	defer db.mu.Unlock()
	infos := make([]font.FaceInfo, len(db.faces))
	for i, entry := range db.faces {
		infos[i] = entry.info
	}
	return infos
}

// FaceInfo returns the descriptor of a single face.
func (db *Database) FaceInfo(id font.FaceID) (font.FaceInfo, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if id < 1 || int(id) > len(db.faces) {
		return font.FaceInfo{}, false
	}
	return db.faces[id-1].info, true
}

// WithFaceData calls f with the face's raw bytes and collection index.
// The slice must not be retained beyond the call.
func (db *Database) WithFaceData(id font.FaceID, f func(data []byte, faceIndex int)) bool {
	db.mu.Lock()
	if id < 1 || int(id) > len(db.faces) {
		db.mu.Unlock()
		return false
	}
	entry := db.faces[id-1]
	db.mu.Unlock()
	f(entry.data, entry.faceIndex)
	return true
}
