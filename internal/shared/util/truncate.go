package util

// TruncateRunes shortens s to at most max runes. Multi-byte text is cut
// on a rune boundary, never mid-character.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
