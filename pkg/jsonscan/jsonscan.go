// Package jsonscan extracts an embedded JSON object from free-form text.
package jsonscan

// FirstObject returns the span of the first balanced {...} object in s:
// it locates the first '{' and scans forward tracking nesting depth until
// the depth returns to zero. The returned substring includes both braces.
// ok is false when s contains no '{' or the braces never balance.
//
// The scan is purely structural. It does not understand strings or escapes,
// so a brace inside a quoted value counts toward the depth; the payloads
// this agent prices are product-id maps where that cannot occur.
func FirstObject(s string) (span string, ok bool) {
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth == 0 {
			return s[start : i+1], true
		}
	}
	return "", false
}
