package emoji

// DefaultAltHeads maps leading scalars of rendered composite forms to
// the leading scalars of their catalog entries. Mixed tone composites
// render through ZWJ sequences whose first scalar is a hand or person
// part rather than the composed glyph, so their bucket lookup misses
// on the first try.
//
// The table is observational, not structural: it lists the
// divergences in published emoji data. New emoji releases can add
// more; pass an extended table with WithAltHeads when a catalog
// outgrows this one.
func DefaultAltHeads() map[rune][]rune {
	return map[rune][]rune{
		// rightwards hand -> handshake
		0x1FAF1: {0x1F91D},
		// person -> couple with heart, kiss
		0x1F9D1: {0x1F491, 0x1F48F},
		// woman -> women/woman-and-man holding hands, couple, kiss
		0x1F469: {0x1F46B, 0x1F46D, 0x1F491, 0x1F48F},
		// man -> men holding hands, couple, kiss
		0x1F468: {0x1F46C, 0x1F491, 0x1F48F},
	}
}
