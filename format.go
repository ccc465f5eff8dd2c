// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gospec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Escape makes given string safe for single-line diagnostic output:
// carriage returns, line feeds and tabs become `\r`, `\n` and `\t`
// while any other control character c becomes `\0x` followed by c's
// lowercase hexadecimal code point, e.g. "\x1b" becomes `\0x1b`.  All
// other characters including non-ASCII text pass through unchanged.
func Escape(s string) string {
	if !hasControl(s) {
		return s
	}
	b := strings.Builder{}
	for _, r := range s {
		switch {
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsControl(r):
			b.WriteString(`\0x`)
			b.WriteString(strconv.FormatInt(int64(r), 16))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// Render returns the escaped string representation of given value,
// i.e. the value's String or Error method is honored and nil renders
// as "<nil>".
func Render(v interface{}) string {
	return Escape(fmt.Sprint(v))
}

// renderSet renders given elements in their order as "[e1, e2, ...]".
func renderSet[E any](set []E) string {
	ss := make([]string, len(set))
	for i, e := range set {
		ss[i] = Render(e)
	}
	return "[" + strings.Join(ss, ", ") + "]"
}
