// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer holds the generic helpers behind partial updates.

A PUT /movies/{title} body decodes into a patch of pointer fields, where nil
means "keep the stored value". [Fallback] applies one such field onto the
current record; [To] builds patches in code and tests.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Fallback returns *p, or current when the field was omitted from the patch.
func Fallback[T any](p *T, current T) T {
	if p == nil {
		return current
	}
	return *p
}
