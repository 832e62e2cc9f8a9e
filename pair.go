package olc

import "math"

// encodePair produces the first n pair-stage digits (component C4) for the
// given coordinate. n must already be validated by the caller (Encode);
// this function does no bounds checking of its own.
//
// The accumulation order — latitude at even digit indices, longitude at odd,
// place value taken from PairResolutions[d/2] — is exactly spec'd and must
// not be reassociated: two implementations that evaluate operations in this
// order agree bit-for-bit at every boundary coordinate.
func encodePair(lat, lng float64, n int) string {
	remLat := lat + LatMaxDeg
	remLng := lng + LngMaxDeg

	digits := make([]byte, n)
	for d := 0; d < n; d++ {
		placeValue := PairResolutions[d/2]
		var value int
		if d%2 == 0 {
			value = int(math.Floor(remLat / placeValue))
			remLat -= float64(value) * placeValue
		} else {
			value = int(math.Floor(remLng / placeValue))
			remLng -= float64(value) * placeValue
		}
		digits[d] = Alphabet[value]
	}
	return string(digits)
}

// decodePair decodes an already-uppercased, separator/pad-free run of up to
// PairCodeLen alphabet digits into a CodeArea in real (unshifted) degrees.
// CodeLength on the result is len(digits); callers that will append a grid
// suffix overwrite it afterward.
func decodePair(digits string) CodeArea {
	var latLo, lngLo float64
	lastLatPV := PairResolutions[0]
	lastLngPV := PairResolutions[0]

	for i := 0; i < len(digits); i++ {
		pairIdx := i / 2
		placeValue := PairResolutions[pairIdx]
		value := alphabetValue(digits[i])
		if i%2 == 0 {
			latLo += float64(value) * placeValue
			lastLatPV = placeValue
		} else {
			lngLo += float64(value) * placeValue
			lastLngPV = placeValue
		}
	}

	return CodeArea{
		LatLo:      latLo - LatMaxDeg,
		LngLo:      lngLo - LngMaxDeg,
		LatHi:      latLo + lastLatPV - LatMaxDeg,
		LngHi:      lngLo + lastLngPV - LngMaxDeg,
		CodeLength: len(digits),
	}
}
