package olc

import "strings"

// assembleCode joins a pair-stage digit run and an optional grid-stage
// digit run into the final textual code (component C6): padding out to
// SeparatorPosition digits when fewer than that many pair digits were
// produced, inserting Separator at digit 8 otherwise, and appending any
// grid digits after it. The separator is never the final character when
// grid digits are present.
func assembleCode(pairDigits, gridDigits string) string {
	total := len(gridDigits) + 1 // +1 for the separator
	if len(pairDigits) < SeparatorPosition {
		total += SeparatorPosition
	} else {
		total += len(pairDigits)
	}
	var b strings.Builder
	b.Grow(total)

	if len(pairDigits) < SeparatorPosition {
		b.WriteString(pairDigits)
		for i := len(pairDigits); i < SeparatorPosition; i++ {
			b.WriteByte(PadChar)
		}
		b.WriteByte(Separator)
	} else {
		b.WriteString(pairDigits[:SeparatorPosition])
		b.WriteByte(Separator)
		b.WriteString(pairDigits[SeparatorPosition:])
	}
	b.WriteString(gridDigits)

	return b.String()
}
