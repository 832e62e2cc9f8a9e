package olc

import "math"

// Coordinate is a plain (latitude, longitude) pair in degrees. It carries no
// invariants of its own — clipping and normalization are explicit functions,
// never implicit constructor behavior, so callers always know whether a
// value has been adjusted.
type Coordinate struct {
	Lat float64 // Lat is in degrees; valid range after ClipLatitude is [-90, 90].
	Lng float64 // Lng is in degrees; valid range after NormalizeLongitude is [-180, 180).
}

// ClipLatitude clamps lat to the closed interval [-90, 90].
//
// Complexity: O(1).
func ClipLatitude(lat float64) float64 {
	if lat < -LatMaxDeg {
		return -LatMaxDeg
	}
	if lat > LatMaxDeg {
		return LatMaxDeg
	}
	return lat
}

// NormalizeLongitude wraps lng into the half-open interval [-180, 180) by
// adding or subtracting full turns. The result is never exactly 180: a value
// that lands there is folded to -180, keeping the interval half-open as
// spec'd.
//
// Complexity: O(1); uses math.Mod rather than a subtraction loop so extreme
// inputs (many turns away) still resolve in constant time.
func NormalizeLongitude(lng float64) float64 {
	lng = math.Mod(lng, 360)
	if lng < -LngMaxDeg {
		lng += 360
	} else if lng >= LngMaxDeg {
		lng -= 360
	}
	return lng
}

// latitudePrecision returns the angular height, in degrees, of a cell coded
// by a code of the given digit length. It is used only to bias
// latitude == 90 downward before encoding, so the resulting cell's high edge
// does not exceed 90.
//
// For len <= PairCodeLen this is 20^(floor(len/-2 + 2)); beyond PairCodeLen
// each further digit divides the cell by GridRows.
func latitudePrecision(length int) float64 {
	if length <= PairCodeLen {
		return math.Pow(20, math.Floor(float64(length)/-2+2))
	}
	return math.Pow(20, -3) / math.Pow(GridRows, float64(length-PairCodeLen))
}

// adjustLatitudeForEncoding clips lat, then — if it lands exactly on the
// north pole — nudges it down by one cell's height at the target length, so
// Decode(Encode(lat, ...)) yields a cell whose high edge is <= 90 instead of
// straddling the pole.
func adjustLatitudeForEncoding(lat float64, length int) float64 {
	lat = ClipLatitude(lat)
	if lat == LatMaxDeg {
		lat -= latitudePrecision(length)
	}
	return lat
}
