// SPDX-License-Identifier: MPL-2.0

// Package naming provides the case transforms used to derive class names,
// file names and identifiers from a feature name. All transforms share one
// word-splitting rule, so the same feature name yields the same artifact
// names regardless of which spelling the user typed (dash-case, snake_case,
// camelCase or space separated).
package naming

import (
	"strings"
	"unicode"
)

// Dasherize converts s to dash-case: "CreateUser", "create user" and
// "create_user" all become "create-user". Dasherizing an already
// dash-cased string returns it unchanged.
func Dasherize(s string) string {
	return strings.Join(words(s), "-")
}

// Classify converts s to a PascalCase class name: "create-user" becomes
// "CreateUser".
func Classify(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// Camelize converts s to camelCase: "create-user" becomes "createUser".
func Camelize(s string) string {
	var b strings.Builder
	for i, w := range words(s) {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// words splits s into lowercase word runs. Boundaries are '-', '_', '.',
// whitespace, and transitions from a lowercase letter or digit to an
// uppercase letter. Digits stay attached to the word they follow, so
// "v2-user" survives a Dasherize/Classify round trip.
func words(s string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			flush()
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				flush()
			}
			cur.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			cur.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	flush()
	return out
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
