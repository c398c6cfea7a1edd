package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/typeface/core"
)

// resolveView runs metric resolution against a single-face catalog
// serving the given view.
func resolveView(view *fakeView) (*ResolvedFont, error) {
	cat := &fakeCatalog{faces: []FaceInfo{
		face(1, "Probe", StyleNormal, WeightNormal, StretchNormal),
	}}
	parser := fakeParser{views: map[string]*fakeView{"Probe": view}}
	return ResolveFont(cat, parser, 1)
}

func TestResolveCompleteTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{
		upem: 2048, ascent: 1600, descent: -400,
		xheight:   i16(900),
		strikeout: i16(512),
		underline: &UnderlineMetrics{Position: -180, Thickness: 90},
		subOff:    i16(-220),
		superOff:  i16(700),
	}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, uint16(2048), rf.UnitsPerEm)
	assert.Equal(t, int16(1600), rf.Ascent)
	assert.Equal(t, int16(-400), rf.Descent)
	assert.Equal(t, uint16(900), rf.XHeight)
	assert.Equal(t, int16(512), rf.LineThroughPosition)
	assert.Equal(t, int16(-180), rf.UnderlinePosition)
	assert.Equal(t, uint16(90), rf.UnderlineThickness)
	assert.Equal(t, int16(-220), rf.SubscriptOffset)
	assert.Equal(t, int16(700), rf.SuperscriptOffset)
}

func TestResolveDerivedXHeightAndStrikeout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	// ascent 800, descent -200: 45% of 1000 = 450, strikeout = half of it
	view := &fakeView{upem: 1000, ascent: 800, descent: -200}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, uint16(450), rf.XHeight)
	assert.Equal(t, int16(225), rf.LineThroughPosition)
}

func TestResolveNonPositiveXHeightIsDerived(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{upem: 1000, ascent: 800, descent: -200, xheight: i16(0)}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, uint16(450), rf.XHeight, "zero table x-height treated as absent")
}

func TestResolveUnderlineDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{upem: 1000, ascent: 800, descent: -200}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, int16(-111), rf.UnderlinePosition)
	assert.Equal(t, uint16(83), rf.UnderlineThickness)
}

func TestResolveUnderlineThicknessSubstituted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{
		upem: 1000, ascent: 800, descent: -200,
		underline: &UnderlineMetrics{Position: -150, Thickness: 0},
	}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, int16(-150), rf.UnderlinePosition, "table position survives")
	assert.Equal(t, uint16(83), rf.UnderlineThickness, "zero thickness replaced by upem/12")
}

func TestResolveSubSuperFallbackFactors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{upem: 1000, ascent: 800, descent: -200}
	rf, err := resolveView(view)
	assert.NoError(t, err)
	assert.Equal(t, int16(5000), rf.SubscriptOffset, "upem / 0.2")
	assert.Equal(t, int16(2500), rf.SuperscriptOffset, "upem / 0.4")
}

func TestResolveZeroUnitsPerEmFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	view := &fakeView{upem: 0, ascent: 800, descent: -200}
	_, err := resolveView(view)
	assert.ErrorIs(t, err, ErrMetricRange)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestResolveParseFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	cat := &fakeCatalog{faces: []FaceInfo{
		face(1, "Probe", StyleNormal, WeightNormal, StretchNormal),
	}}
	parser := fakeParser{views: map[string]*fakeView{}} // knows nothing
	_, err := ResolveFont(cat, parser, 1)
	assert.ErrorIs(t, err, ErrFaceParse)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestResolveUnknownFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	cat := &fakeCatalog{}
	_, err := ResolveFont(cat, fakeParser{}, 7)
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolvedFontScaling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typeface.fonts")
	defer teardown()
	//
	rf := &ResolvedFont{
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    -200,
		XHeight:    450,
	}
	assert.InDelta(t, 0.012, rf.Scale(12), 1e-9)
	assert.InDelta(t, 9.6, rf.ScaledAscent(12), 1e-9)
	assert.InDelta(t, -2.4, rf.ScaledDescent(12), 1e-9)
	assert.InDelta(t, 5.4, rf.ScaledXHeight(12), 1e-9)
	assert.Equal(t, int32(1000), rf.Height())
}
