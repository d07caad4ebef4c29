// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-supplied identifiers before they are
// stored or looked up.
//
// # Why
//
// "Amélie" typed on two keyboards can arrive as a precomposed é or as e plus
// a combining accent. Both must hit the same unique index, so usernames and
// movie titles are folded to NFC. Case is preserved: lookups stay case-sensitive.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical trims surrounding whitespace, drops control characters and
// composes the result to Unicode NFC.
func Canonical(s string) string {
	t := transform.Chain(transform.RemoveFunc(unicode.IsControl), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = norm.NFC.String(s)
	}
	return strings.TrimSpace(result)
}
