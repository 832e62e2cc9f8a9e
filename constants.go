package olc

import "sync"

// Alphabet & layout constants (component C1).
//
// These tables are immutable for the lifetime of the process. The only
// derived structure, alphabetIndex, is built once via sync.OnceValue and
// never mutated afterward — safe to read concurrently from any goroutine
// without synchronization.
const (
	// Alphabet lists the twenty symbols a code digit may take, in the order
	// their numeric value increases. Case on input is folded to this table's
	// case (upper) before lookup; output is always this case.
	Alphabet = "23456789CFGHJMPQRVWX"

	// Separator marks the boundary between the eighth and ninth code digit.
	Separator = '+'
	// SeparatorStr is Separator as a one-rune string, for concatenation.
	SeparatorStr = "+"
	// PadChar fills a code out to SeparatorPosition digits when a shorter
	// length was requested.
	PadChar = '0'

	// SeparatorPosition is the digit index (0-based) at which Separator sits
	// once padding, if any, is applied.
	SeparatorPosition = 8
	// PairCodeLen is the number of digits produced by the pair stage (C4).
	PairCodeLen = 10
	// MinTrimmableCodeLen is the shortest code length Shorten will act on.
	MinTrimmableCodeLen = 6

	// LatMaxDeg and LngMaxDeg bound the shifted coordinate domain used by
	// the pair encoder ([-LatMaxDeg, LatMaxDeg] and [-LngMaxDeg, LngMaxDeg)).
	LatMaxDeg = 90.0
	LngMaxDeg = 180.0

	// GridRows and GridCols size the 4x5 refinement grid used by digits
	// eleven and beyond (component C5).
	GridRows = 5
	GridCols = 4

	// GridSizeDegrees is the side length, in degrees, of the single cell the
	// pair stage narrows down to after PairCodeLen digits, and the seed
	// place-value the grid stage refines from.
	GridSizeDegrees = 0.000125

	// encodingBase is the alphabet's radix; used by the validator's IsFull
	// latitude/longitude first-pair bounds (LatMaxDeg*2/encodingBase == 9,
	// LngMaxDeg*2/encodingBase == 18).
	encodingBase = 20
)

// PairResolutions holds, in degrees, the place value of each pair-stage
// digit position (index = digit-pair index, i.e. floor(digitIndex/2)).
// PairResolutions[0] is the coarsest (first) pair; PairResolutions[4] equals
// GridSizeDegrees, the finest pair place value and the grid's seed size.
var PairResolutions = [5]float64{20, 1, 0.05, 0.0025, 0.000125}

var alphabetIndexOnce = sync.OnceValue(buildAlphabetIndex)

// buildAlphabetIndex constructs the byte -> digit-value lookup table used by
// every decode path. It is computed lazily, exactly once, and the resulting
// array value is copied out to every caller, so no caller can observe (or
// cause) mutation of the shared cache.
func buildAlphabetIndex() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for value, ch := range []byte(Alphabet) {
		idx[ch] = int8(value)
	}
	return idx
}

// alphabetValue returns the numeric value of upper-case alphabet digit ch,
// or -1 if ch is not in Alphabet.
func alphabetValue(ch byte) int {
	return int(alphabetIndexOnce()[ch])
}

// isAlphabetDigit reports whether upper-cased ch is one of the twenty
// alphabet symbols.
func isAlphabetDigit(ch byte) bool {
	return alphabetValue(ch) >= 0
}
