package jbisc

import "strings"

// StripBracketsAndTrim trims whitespace, removes one leading "[" and one
// trailing "]" if present, and trims again: " [ foo]  " becomes "foo".
// It is not a balanced scan; a string with only a leading or only a
// trailing bracket has just that one removed.
func StripBracketsAndTrim(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}
