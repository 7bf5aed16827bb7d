package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// spaceChars is the body of a character class for resume whitespace: ASCII
// \t-\r (including \v), the information separators 0x1C-0x1F, NEL and every
// Unicode separator. RE2's \s covers only [\t\n\f\r ].
const spaceChars = `\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}`

// compilePattern compiles expr with every \s widened to spaceChars, both as a
// standalone class and inside bracket expressions.
func compilePattern(expr string) *regexp.Regexp {
	var b strings.Builder
	inClass := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\' && i+1 < len(expr):
			if expr[i+1] == 's' {
				if inClass {
					b.WriteString(spaceChars)
				} else {
					b.WriteString("[" + spaceChars + "]")
				}
			} else {
				b.WriteByte(c)
				b.WriteByte(expr[i+1])
			}
			i++
			continue
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		}
		b.WriteByte(c)
	}

	return regexp.MustCompile(b.String())
}

// isSpace reports whether r is in spaceChars.
func isSpace(r rune) bool {
	return (r >= '\t' && r <= '\r') || (r >= 0x1c && r <= 0x1f) || r == 0x85 || unicode.Is(unicode.Z, r)
}

// trimSpace is strings.TrimSpace over isSpace.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
