// Package prefix resolves possibly-abbreviated words against a fixed
// vocabulary. Used by the parser for switch name lookup, definition switch
// lookup, and enumeration member matching.
package prefix

import (
	"fmt"
	"sort"
	"strings"
)

// Resolve matches input against the candidate vocabulary. An exact match wins
// outright. Otherwise, unless exact is set, a prefix selecting a single
// candidate resolves to it. The second result reports whether a unique match
// was found.
func Resolve(candidates []string, input string, exact bool) (string, bool) {
	for _, c := range candidates {
		if c == input {
			return c, true
		}
	}
	if exact {
		return "", false
	}
	found := ""
	count := 0
	for _, c := range candidates {
		if strings.HasPrefix(c, input) {
			found = c
			count++
		}
	}
	if count == 1 {
		return found, true
	}
	return "", false
}

// Match is Resolve with error reporting. label names the vocabulary in the
// error message ("option", "switch", "-color value", ...).
//
// Failures produce one of:
//
//	bad <label> "<input>": must be a, b, or c
//	ambiguous <label> "<input>": must be a, b, or c
func Match(candidates []string, input, label string, exact bool) (string, error) {
	if m, ok := Resolve(candidates, input, exact); ok {
		return m, nil
	}
	kind := "bad"
	if !exact {
		n := 0
		for _, c := range candidates {
			if strings.HasPrefix(c, input) {
				n++
			}
		}
		if n > 1 {
			kind = "ambiguous"
		}
	}
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	return "", fmt.Errorf("%s %s %q: must be %s", kind, label, input, JoinOr(sorted))
}

// JoinOr renders a list as "a", "a or b", or "a, b, or c".
func JoinOr(items []string) string { return join(items, "or") }

// JoinAnd renders a list as "a", "a and b", or "a, b, and c".
func JoinAnd(items []string) string { return join(items, "and") }

func join(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	last := conj + " " + items[len(items)-1]
	sep := " "
	if len(items) > 2 {
		sep = ", "
	}
	return strings.Join(items[:len(items)-1], sep) + sep + last
}

// Closest returns the candidate sharing the longest leading run of characters
// with input, for "did you mean" suggestions. Runs must be at least two
// characters; ties go to the lexicographically first candidate. Returns ""
// when nothing comes close.
func Closest(candidates []string, input string) string {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	best, bestLen := "", 1
	for _, c := range sorted {
		n := 0
		for n < len(c) && n < len(input) && c[n] == input[n] {
			n++
		}
		if n > bestLen {
			best, bestLen = c, n
		}
	}
	return best
}

// Summary renders a list as "a, b or c", with no separator before the
// conjunction. Used for type vocabulary summaries.
func Summary(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
