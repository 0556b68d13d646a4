// Package reader turns Scheme source text into the S-expression trees
// the evaluator consumes: a line-oriented tokenizer feeds a token-buffer
// parser that can request more input mid-expression.
package reader

import "strings"

// tokenizeLine splits one line of source into tokens. Strings are
// recognized per-line (a string literal may not span a line break);
// line comments start at the first unquoted ';'; '\'', '(' and ')' are
// always their own token.
func tokenizeLine(line string) []string {
	segments := strings.Split(line, `"`)
	var code strings.Builder
	strs := make([]string, 0, len(segments)/2)
	for i, seg := range segments {
		if i%2 == 1 {
			strs = append(strs, `"`+seg)
			code.WriteString(" #s ")
		} else {
			code.WriteString(seg)
		}
	}

	buf := code.String()
	if idx := strings.IndexByte(buf, ';'); idx >= 0 {
		buf = buf[:idx]
	}
	buf = strings.ReplaceAll(buf, "'", " ' ")
	buf = strings.ReplaceAll(buf, "(", " ( ")
	buf = strings.ReplaceAll(buf, ")", " ) ")

	fields := strings.FieldsFunc(buf, func(r rune) bool {
		switch r {
		case ' ', '\t', '\v', '\f':
			return true
		default:
			return false
		}
	})

	tokens := make([]string, 0, len(fields))
	next := 0
	for _, f := range fields {
		if f == "#s" && next < len(strs) {
			tokens = append(tokens, strs[next])
			next++
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
