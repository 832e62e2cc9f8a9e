package olc

import (
	"math"
	"strings"
)

// RecoverNearest reconstructs the full code nearest ref from a short code
// (component C9), reversing Shorten. If shortCode is already a full code it
// is returned unchanged (matching the reference behaviour of accepting
// either form); any other invalid input is rejected.
//
// The centre-correction below is what makes recovery return
// the geographically nearest match rather than the raw, naively padded
// candidate: a code recovered from any reference within half a cell of the
// true location always yields the same full code Shorten started from.
func RecoverNearest(shortCode string, refLat, refLng float64) (string, error) {
	if !IsShort(shortCode) {
		if IsFull(shortCode) {
			return shortCode, nil
		}
		return "", newError(KindInvalidCode, "RecoverNearest", "code is neither a valid short nor full plus+code")
	}

	refLat = ClipLatitude(refLat)
	refLng = NormalizeLongitude(refLng)

	sepIdx := strings.IndexByte(shortCode, Separator)
	paddingLength := SeparatorPosition - sepIdx

	resolution := math.Pow(20, 2-float64(paddingLength)/2)
	half := resolution / 2

	roundedLat := math.Floor(refLat/resolution) * resolution
	roundedLng := math.Floor(refLng/resolution) * resolution

	prefix, err := Encode(roundedLat, roundedLng, paddingLength)
	if err != nil {
		return "", err
	}
	candidate := prefix[:paddingLength] + shortCode

	decoded, err := Decode(candidate)
	if err != nil {
		return "", err
	}

	adjustedLat := decoded.LatCenter()
	if latDiff := adjustedLat - refLat; latDiff > half {
		adjustedLat -= resolution
	} else if latDiff < -half {
		adjustedLat += resolution
	}

	adjustedLng := decoded.LngCenter()
	if lngDiff := adjustedLng - refLng; lngDiff > half {
		adjustedLng -= resolution
	} else if lngDiff < -half {
		adjustedLng += resolution
	}

	return Encode(adjustedLat, adjustedLng, decoded.CodeLength)
}
