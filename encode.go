package olc

// DefaultCodeLength is the digit count Encode uses when no explicit length
// is given: ten digits, i.e. full pair-stage precision with no grid
// refinement — roughly a 14m x 14m cell at the equator.
const DefaultCodeLength = PairCodeLen

// Encode maps (lat, lng) to a code of the requested digit length (component
// C6, driving C2/C4/C5). length is variadic to model the specification's
// "len=10" default: pass nothing for DefaultCodeLength, or exactly one
// value to request another length. Passing more than one value is a
// programmer error and panics, the same way the teacher's WithX option
// constructors panic on invalid configuration.
//
// Legal lengths are 2, 4, 6, 8, 10, 11, 12, … — even below ten, any integer
// at or above ten. Latitude is clipped to [-90, 90] (and nudged down off
// the exact pole so the resulting cell's north edge does not exceed 90);
// longitude is wrapped into [-180, 180).
func Encode(lat, lng float64, length ...int) (string, error) {
	n := DefaultCodeLength
	switch len(length) {
	case 0:
	case 1:
		n = length[0]
	default:
		panic("olc: Encode accepts at most one explicit length")
	}

	if err := validateEncodeLength(n); err != nil {
		return "", err
	}

	lat = adjustLatitudeForEncoding(lat, n)
	lng = NormalizeLongitude(lng)

	pairLen := n
	if pairLen > PairCodeLen {
		pairLen = PairCodeLen
	}
	pairDigits := encodePair(lat, lng, pairLen)

	var gridDigits string
	if n > PairCodeLen {
		gridDigits = encodeGrid(lat, lng, n-PairCodeLen)
	}

	return assembleCode(pairDigits, gridDigits), nil
}

// validateEncodeLength rejects lengths that cannot be produced by the pair
// and grid stages: fewer than two digits, or an odd digit count below the
// ten-digit pair/grid boundary (odd counts there would assemble into an
// odd-length padding run or a single digit after the separator, neither of
// which IsValid accepts).
func validateEncodeLength(n int) error {
	if n < 2 {
		return newError(KindInvalidLength, "Encode", "code length must be at least 2")
	}
	if n < PairCodeLen && n%2 != 0 {
		return newError(KindInvalidLength, "Encode", "code length below 10 must be even")
	}
	return nil
}
