package olc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridcode/olc"
)

const eps = 1e-10

func TestEncode_SeedScenarios(t *testing.T) {
	t.Parallel()

	code, err := olc.Encode(20.375, 2.775, 6)
	require.NoError(t, err)
	assert.Equal(t, "7FG49Q00+", code)

	code, err = olc.Encode(47.0000625, 8.0000625, 11)
	require.NoError(t, err)
	assert.Equal(t, "8FVC2222+235", code)
}

func TestDecode_SeedScenarios(t *testing.T) {
	t.Parallel()

	area, err := olc.Decode("7FG49Q00+")
	require.NoError(t, err)
	assert.InDelta(t, 20.35, area.LatLo, eps)
	assert.InDelta(t, 2.75, area.LngLo, eps)
	assert.InDelta(t, 20.4, area.LatHi, eps)
	assert.InDelta(t, 2.8, area.LngHi, eps)
	assert.Equal(t, 6, area.CodeLength)

	area, err = olc.Decode("8FVC2222+235")
	require.NoError(t, err)
	assert.Equal(t, 11, area.CodeLength)
}

func TestEncode_DefaultLength(t *testing.T) {
	t.Parallel()

	withDefault, err := olc.Encode(20.375, 2.775)
	require.NoError(t, err)
	withExplicit, err := olc.Encode(20.375, 2.775, olc.DefaultCodeLength)
	require.NoError(t, err)
	assert.Equal(t, withExplicit, withDefault)
}

func TestEncode_InvalidLength(t *testing.T) {
	t.Parallel()

	_, err := olc.Encode(0, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, olc.ErrInvalidLength)

	_, err = olc.Encode(0, 0, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, olc.ErrInvalidLength)

	_, err = olc.Encode(0, 0, -4)
	require.Error(t, err)
	assert.ErrorIs(t, err, olc.ErrInvalidLength)
}

func TestEncode_MultipleLengthArgsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		_, _ = olc.Encode(0, 0, 4, 6)
	})
}

func TestDecode_RejectsShortOrInvalidCode(t *testing.T) {
	t.Parallel()

	_, err := olc.Decode("CJ+2VX")
	require.Error(t, err)
	assert.ErrorIs(t, err, olc.ErrInvalidCode)

	_, err = olc.Decode("not a code")
	require.Error(t, err)
	assert.ErrorIs(t, err, olc.ErrInvalidCode)
}

func TestRoundTrip_EncodeDecode(t *testing.T) {
	t.Parallel()

	lengths := []int{2, 4, 6, 8, 10, 11, 13}
	points := [][2]float64{
		{0, 0}, {51.3701125, -1.217765625}, {-33.85, 151.2}, {89.999, 179.999},
		{-89.999, -179.999}, {20.375, 2.775}, {47.0000625, 8.0000625},
	}

	for _, length := range lengths {
		for _, p := range points {
			code, err := olc.Encode(p[0], p[1], length)
			require.NoError(t, err)
			area, err := olc.Decode(code)
			require.NoError(t, err)

			clippedLat := olc.ClipLatitude(p[0])
			normalizedLng := olc.NormalizeLongitude(p[1])
			assert.LessOrEqualf(t, area.LatLo, clippedLat+eps, "lat lower bound for %v len %d", p, length)
			assert.GreaterOrEqualf(t, area.LatHi, clippedLat-eps, "lat upper bound for %v len %d", p, length)
			assert.LessOrEqualf(t, area.LngLo, normalizedLng+eps, "lng lower bound for %v len %d", p, length)
			assert.GreaterOrEqualf(t, area.LngHi, normalizedLng-eps, "lng upper bound for %v len %d", p, length)
		}
	}
}

func TestRoundTrip_DecodeEncodeIsStable(t *testing.T) {
	t.Parallel()

	codes := []string{"7FG49Q00+", "8FVC2222+235", "9C3W9QCJ+2VX"}
	for _, code := range codes {
		area, err := olc.Decode(code)
		require.NoError(t, err)

		reencoded, err := olc.Encode(area.LatCenter(), area.LngCenter(), area.CodeLength)
		require.NoError(t, err)
		assert.Equal(t, code, reencoded)
	}
}

func TestEncode_LongitudeWrapsAt360(t *testing.T) {
	t.Parallel()

	a, err := olc.Encode(21.4, 51.1, 10)
	require.NoError(t, err)
	b, err := olc.Encode(21.4, 51.1+360, 10)
	require.NoError(t, err)
	c, err := olc.Encode(21.4, 51.1-720, 10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}

func TestEncode_NorthPoleDoesNotExceed90(t *testing.T) {
	t.Parallel()

	code, err := olc.Encode(90, 0, 10)
	require.NoError(t, err)
	area, err := olc.Decode(code)
	require.NoError(t, err)
	assert.LessOrEqual(t, area.LatHi, 90.0+eps)
}

func TestEncode_SouthPoleDoesNotUnderflowMinus90(t *testing.T) {
	t.Parallel()

	code, err := olc.Encode(-90, 0, 10)
	require.NoError(t, err)
	area, err := olc.Decode(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, area.LatLo, -90.0-eps)
}

func TestCodeArea_GeometryAdapter(t *testing.T) {
	t.Parallel()

	area, err := olc.Decode("7FG49Q00+")
	require.NoError(t, err)

	bound := area.Bound()
	assert.InDelta(t, area.LngLo, bound.Min[0], eps)
	assert.InDelta(t, area.LatLo, bound.Min[1], eps)
	assert.InDelta(t, area.LngHi, bound.Max[0], eps)
	assert.InDelta(t, area.LatHi, bound.Max[1], eps)

	center := area.Center()
	assert.InDelta(t, area.LngCenter(), center[0], eps)
	assert.InDelta(t, area.LatCenter(), center[1], eps)
}

func TestLatCenter_CapsAtNinety(t *testing.T) {
	t.Parallel()
	area := olc.CodeArea{LatLo: 89.9999, LatHi: 90.0001}
	assert.LessOrEqual(t, area.LatCenter(), 90.0)
}

func TestNormalizeLongitude_NeverReturnsExactly180(t *testing.T) {
	t.Parallel()
	assert.Less(t, olc.NormalizeLongitude(180), 180.0)
	assert.False(t, math.IsNaN(olc.NormalizeLongitude(180)))
}
