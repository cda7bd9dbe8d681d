package coder

import (
	"strings"
	"unicode"
)

func isIdentifier(text string) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// splitArguments splits call arguments on top level commas
func splitArguments(text string) []string {
	var ret []string
	depth, start := 0, 0
	var quote rune
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote && (i == 0 || text[i-1] != '\\') {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[' || r == '{' || r == '<':
			depth++
		case r == ')' || r == ']' || r == '}' || r == '>':
			depth--
		case r == ',' && depth == 0:
			ret = append(ret, strings.TrimSpace(text[start:i]))
			start = i + 1
		}
	}
	if last := strings.TrimSpace(text[start:]); last != "" || len(ret) > 0 {
		ret = append(ret, last)
	}
	return ret
}

// assignmentIndex returns the position of a top level "=" that is not part of a comparison, or -1
func assignmentIndex(text string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '"', '\'':
			closing := strings.IndexByte(text[i+1:], text[i])
			if closing == -1 {
				return -1
			}
			i += closing + 1
		case '=':
			if depth != 0 || i == 0 {
				continue
			}
			if strings.IndexByte("!<>=", text[i-1]) != -1 || (i+1 < len(text) && text[i+1] == '=') {
				i++
				continue
			}
			return i
		}
	}
	return -1
}
