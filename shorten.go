package olc

import "math"

// shortenSafetyFactor scales the pair resolution a code is trimmed at: 0.3
// rather than the naive 0.5 half-cell bound, so a reference point that lands
// close to a cell boundary can never recover to the wrong neighbouring cell.
const shortenSafetyFactor = 0.3

// Shorten trims code's leading digits relative to a reference point
// (component C8), returning the shortest prefix-free code that still
// recovers to code given a reference within range. It returns code
// unchanged if no leading digits can safely be dropped.
//
// code must be a full, unpadded code of at least MinTrimmableCodeLen
// digits; ref is clipped/normalized the same way Encode's inputs are.
func Shorten(code string, refLat, refLng float64) (string, error) {
	if !IsFull(code) {
		return "", newError(KindInvalidCode, "Shorten", "code is not a full, valid plus+code")
	}
	if hasPadding(code) {
		return "", newError(KindUnsupportedOperation, "Shorten", "cannot shorten a padded code")
	}

	area, err := Decode(code)
	if err != nil {
		return "", err
	}
	if area.CodeLength < MinTrimmableCodeLen {
		return "", newError(KindCodeTooShort, "Shorten", "code is shorter than the minimum trimmable length")
	}

	latDiff := math.Abs(area.LatCenter() - ClipLatitude(refLat))
	lngDiff := math.Abs(area.LngCenter() - NormalizeLongitude(refLng))
	rng := math.Max(latDiff, lngDiff)

	for i := len(PairResolutions) - 2; i >= 1; i-- {
		if rng < PairResolutions[i]*shortenSafetyFactor {
			return code[2*(i+1):], nil
		}
	}
	return code, nil
}

// hasPadding reports whether code contains the padding character.
func hasPadding(code string) bool {
	for i := 0; i < len(code); i++ {
		if code[i] == PadChar {
			return true
		}
	}
	return false
}
