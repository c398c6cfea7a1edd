package opentype

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"github.com/npillmayer/typeface/core/font"
)

// --- Test Suite Preparation ------------------------------------------------

type ParserTestEnviron struct {
	suite.Suite
	regular font.FaceView
}

// listen for 'go test' command --> run test methods
func TestParserFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	suite.Run(t, new(ParserTestEnviron))
}

// run once, before test suite methods
func (env *ParserTestEnviron) SetupSuite() {
	view, err := Parser{}.Parse(goregular.TTF, 0)
	env.Require().NoError(err, "embedded Go Regular must parse")
	env.regular = view
}

// --- Tests -----------------------------------------------------------------

func (env *ParserTestEnviron) TestBasicMetrics() {
	env.Equal(uint16(2048), env.regular.UnitsPerEm(), "Go Regular has an em square of 2048")
	env.Greater(env.regular.Ascender(), int16(0))
	env.Less(env.regular.Descender(), int16(0))
}

func (env *ParserTestEnviron) TestOptionalTables() {
	xh, ok := env.regular.XHeight()
	env.True(ok, "Go Regular carries a version 4 OS/2 table")
	env.Greater(xh, int16(0))
	_, ok = env.regular.StrikeoutPosition()
	env.True(ok)
	ul, ok := env.regular.Underline()
	env.True(ok, "Go Regular carries a post table")
	env.NotZero(ul.Thickness)
	_, ok = env.regular.SubscriptOffset()
	env.True(ok)
	_, ok = env.regular.SuperscriptOffset()
	env.True(ok)
}

func (env *ParserTestEnviron) TestGlyphCoverage() {
	_, ok := env.regular.GlyphIndex('A')
	env.True(ok, "expected a glyph for 'A'")
	_, ok = env.regular.GlyphIndex('中')
	env.False(ok, "Go Regular has no CJK coverage")
}

func (env *ParserTestEnviron) TestParseGarbage() {
	_, err := Parser{}.Parse([]byte("not a font"), 0)
	env.Error(err)
}

func (env *ParserTestEnviron) TestNumFaces() {
	env.Equal(1, NumFaces(goregular.TTF))
	env.Equal(1, NumFaces([]byte("short")))
}

func (env *ParserTestEnviron) TestClassifyRegular() {
	info, err := ClassifyFace(goregular.TTF, 0)
	env.Require().NoError(err)
	env.Equal("Go", info.PreferredName())
	env.Equal(font.StyleNormal, info.Style)
	env.Equal(font.WeightNormal, info.Weight)
	env.Equal(font.StretchNormal, info.Stretch)
	env.NotEmpty(info.Families)
	hasUS := false
	for _, fam := range info.Families {
		if fam.Lang == language.AmericanEnglish {
			hasUS = true
		}
	}
	env.True(hasUS, "expected a U.S.-English family name record")
}

func (env *ParserTestEnviron) TestClassifyBoldAndItalic() {
	bold, err := ClassifyFace(gobold.TTF, 0)
	env.Require().NoError(err)
	env.Equal(font.WeightBold, bold.Weight)
	italic, err := ClassifyFace(goitalic.TTF, 0)
	env.Require().NoError(err)
	env.Equal(font.StyleItalic, italic.Style)
}

func (env *ParserTestEnviron) TestClassifyMono() {
	mono, err := ClassifyFace(gomono.TTF, 0)
	env.Require().NoError(err)
	env.Equal("Go Mono", mono.PreferredName())
}
