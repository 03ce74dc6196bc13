package parse

import (
	"fmt"
	"strings"
	"unicode"
)

// Split breaks a command line into tokens following cmd.exe conventions:
// double or single quotes group words, '^' escapes the next character outside
// quotes and '\"' is a literal quote inside double quotes.
func Split(s string) ([]string, error) {
	tokens := []string{}
	var (
		cur     strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, cur.String())
			cur.Reset()
			started = false
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			if r == '\\' && quote == '"' && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '^':
			escaped = true
			started = true
		case r == '"' || r == '\'':
			quote = r
			started = true
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote %q", quote)
	}
	if escaped {
		return nil, fmt.Errorf("dangling escape character")
	}
	flush()

	return tokens, nil
}
