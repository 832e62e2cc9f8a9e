package olc

import "math"

// encodeGrid produces m grid-stage digits (component C5), refining inside
// the GridSizeDegrees x GridSizeDegrees cell the pair stage already narrowed
// down to.
//
// Step order matches spec exactly: row/col are computed from the
// about-to-be-applied place value, the place value is then divided down,
// and the remainder is taken using the already-divided value. This mirrors
// the reference algorithm's evaluation order so results agree at every
// boundary.
func encodeGrid(lat, lng float64, m int) string {
	remLat := math.Mod(lat+LatMaxDeg, GridSizeDegrees)
	remLng := math.Mod(lng+LngMaxDeg, GridSizeDegrees)
	latPV := GridSizeDegrees
	lngPV := GridSizeDegrees

	digits := make([]byte, m)
	for i := 0; i < m; i++ {
		row := int(math.Floor(remLat / (latPV / GridRows)))
		col := int(math.Floor(remLng / (lngPV / GridCols)))
		latPV /= GridRows
		lngPV /= GridCols
		remLat -= float64(row) * latPV
		remLng -= float64(col) * lngPV
		digits[i] = Alphabet[row*GridCols+col]
	}
	return string(digits)
}

// decodeGrid decodes a run of grid-stage digits into a CodeArea expressed in
// local offsets from the pair cell's own low corner — the caller (the
// decode front-end) translates by the pair stage's LatLo/LngLo.
func decodeGrid(digits string) CodeArea {
	var latLo, lngLo float64
	latPV := GridSizeDegrees
	lngPV := GridSizeDegrees

	for i := 0; i < len(digits); i++ {
		latPV /= GridRows
		lngPV /= GridCols
		value := alphabetValue(digits[i])
		row := value / GridCols
		col := value % GridCols
		latLo += float64(row) * latPV
		lngLo += float64(col) * lngPV
	}

	return CodeArea{
		LatLo:      latLo,
		LngLo:      lngLo,
		LatHi:      latLo + latPV,
		LngHi:      lngLo + lngPV,
		CodeLength: PairCodeLen + len(digits),
	}
}
