package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits line into tokens.
//
// A token is a maximal run of non-space characters and complete
// double-quoted spans. Quotes are removed and spaces inside them kept, so
// `a"b c"d` is the single token "ab cd" and `""` is an empty token. A quote
// with no closing partner ends the current token and is dropped.
func Tokenize(line string) []string {
	tokens := []string{}
	i := 0

	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		var tok strings.Builder
		inToken := false

	scan:
		for i < len(line) {
			r, size := utf8.DecodeRuneInString(line[i:])
			switch {
			case unicode.IsSpace(r):
				break scan
			case r == '"':
				end := strings.IndexByte(line[i+1:], '"')
				if end < 0 {
					if inToken {
						break scan
					}
					i++
					continue
				}
				tok.WriteString(line[i+1 : i+1+end])
				i += end + 2
				inToken = true
			default:
				tok.WriteString(line[i : i+size])
				i += size
				inToken = true
			}
		}

		if inToken {
			tokens = append(tokens, tok.String())
		}
	}
	return tokens
}
