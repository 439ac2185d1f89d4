package openai

import "strings"

// repairJSON patches the one malformation local models produce often enough
// to matter: object keys missing their opening quote, as in `{criterion": ...}`.
// Anything it cannot recognize passes through untouched.
func repairJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	for i := 0; i < len(s); {
		c := s[i]
		b.WriteByte(c)
		i++
		if c != '{' && c != ',' {
			continue
		}

		for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
			b.WriteByte(s[i])
			i++
		}

		start := i
		for i < len(s) && isKeyByte(s[i]) {
			i++
		}
		if i > start && i+1 < len(s) && s[i] == '"' && s[i+1] == ':' {
			// Unquoted key terminated by `":` so restore the opening quote.
			// The closing quote at s[i] is copied by the outer loop.
			b.WriteByte('"')
			b.WriteString(strings.TrimRight(s[start:i], " "))
		} else {
			b.WriteString(s[start:i])
		}
	}
	return b.String()
}

func isKeyByte(c byte) bool {
	return c == '_' || c == ' ' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
