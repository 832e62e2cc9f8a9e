package olc

import "strings"

// Decode maps a full code to the CodeArea it names (component C7). Decode
// requires a full code — IsFull(code) must hold — since a short code has no
// meaning without a reference point; see Shorten and RecoverNearest.
//
// Complexity: O(len(code)).
func Decode(code string) (CodeArea, error) {
	if !IsFull(code) {
		return CodeArea{}, newError(KindInvalidCode, "Decode", "code is not a full, valid plus+code")
	}

	digits := stripSeparatorAndPadding(code)

	pairLen := len(digits)
	if pairLen > PairCodeLen {
		pairLen = PairCodeLen
	}
	area := decodePair(digits[:pairLen])

	if len(digits) <= PairCodeLen {
		return area, nil
	}

	local := decodeGrid(digits[PairCodeLen:])
	return CodeArea{
		LatLo:      area.LatLo + local.LatLo,
		LngLo:      area.LngLo + local.LngLo,
		LatHi:      area.LatLo + local.LatHi,
		LngHi:      area.LngLo + local.LngHi,
		CodeLength: local.CodeLength,
	}, nil
}

// stripSeparatorAndPadding removes the separator and any padding run from
// code and upper-cases what remains, leaving only alphabet digits in
// pair-then-grid order.
func stripSeparatorAndPadding(code string) string {
	code = strings.ToUpper(code)
	var b strings.Builder
	b.Grow(len(code))
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if ch == Separator || ch == PadChar {
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}
