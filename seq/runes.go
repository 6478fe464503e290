// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"gopkg.microglot.org/maybe.go/optional"
)

// FromString converts a string into an iterator of its code points. Invalid
// UTF-8 bytes are produced as U+FFFD, matching Go's own string-to-runes
// conversion.
func FromString(s string) Iterator[rune] {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanRunes)
	return &runeIterator{scanner: scanner}
}

type runeIterator struct {
	scanner *bufio.Scanner
}

func (it *runeIterator) Next() optional.Optional[rune] {
	ok := it.scanner.Scan()
	if !ok {
		return optional.None[rune]()
	}
	r, _ := utf8.DecodeRune(it.scanner.Bytes())
	return optional.Some(r)
}
