package phoneinput

import "strings"

// MaskSlot is the mask rune that stands for one digit. Every other rune in
// a mask is a literal copied verbatim.
const MaskSlot = 'X'

// ApplyMask formats raw digits with mask. Non-digits in raw are stripped
// before slots are filled. The walk stops as soon as the digits run out, so
// the result never ends in a literal that has no digit after it, and digits
// beyond the mask's slots are dropped.
//
// An empty raw or mask is returned unchanged.
func ApplyMask(raw, mask string) string {
	if raw == "" || mask == "" {
		return raw
	}

	digits := StripMask(raw)

	var builder strings.Builder
	builder.Grow(len(mask))

	next := 0
	for _, r := range mask {
		if next >= len(digits) {
			break
		}
		if r == MaskSlot {
			builder.WriteByte(digits[next])
			next++
			continue
		}
		builder.WriteRune(r)
	}

	return builder.String()
}

// StripMask keeps only the ASCII digits of text.
func StripMask(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			builder.WriteByte(c)
		}
	}
	return builder.String()
}

// MaskSlotCount returns how many digits mask holds.
func MaskSlotCount(mask string) int {
	return strings.Count(mask, string(MaskSlot))
}

// IsComplete reports whether text carries exactly as many digits as mask
// has slots. text may be formatted or raw.
func IsComplete(text, mask string) bool {
	return len(StripMask(text)) == MaskSlotCount(mask)
}
