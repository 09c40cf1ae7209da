// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/AnemonOFF/qrgen/coding"
)

// A Charset selects the bytes Octet mode encodes for the text.
type Charset int

const (
	UTF8     Charset = iota // text bytes as they are
	Latin1                  // ISO 8859-1
	ShiftJIS                // Shift JIS
)

func (c Charset) String() string {
	if c.IsValid() {
		return [...]string{"utf-8", "latin-1", "shift-jis"}[c]
	}
	return "charset(" + strconv.Itoa(int(c)) + ")"
}

// IsValid reports whether c is a known Charset.
func (c Charset) IsValid() bool { return UTF8 <= c && c <= ShiftJIS }

func (c Charset) encoder() *encoding.Encoder {
	switch c {
	case Latin1:
		return charmap.ISO8859_1.NewEncoder()
	case ShiftJIS:
		return japanese.ShiftJIS.NewEncoder()
	}
	return nil
}

// Bytes returns text converted to c.  If a character cannot be
// represented, Bytes returns a *ModeMismatchError for Octet mode
// naming the first such character.
func (c Charset) Bytes(text string) (string, error) {
	enc := c.encoder()
	if enc == nil {
		return text, nil
	}
	if s, err := enc.String(text); err == nil {
		return s, nil
	}
	pos := 0
	for _, r := range text {
		if _, err := enc.String(string(r)); err != nil {
			return "", &ModeMismatchError{Octet, r, pos}
		}
		pos++
	}
	// Unreachable unless the encoder is stateful.
	return "", &ModeMismatchError{Octet, 0, pos}
}

// selectMode returns text as a segment in the requested mode, or in
// the most compact mode that encodes the whole text if mode is
// AutoMode, together with the mode used.
func selectMode(text string, mode Mode, cs Charset) (coding.Segment, Mode, error) {
	if mode == AutoMode {
		mode = Octet
		if all(text, coding.Numeric) {
			mode = Numeric
		} else if all(text, coding.Alphanumeric) {
			mode = Alphanumeric
		}
	} else if mode != Octet {
		pos := 0
		for _, r := range text {
			if !coding.Is(r, mode.coding()) {
				return coding.Segment{}, mode, &ModeMismatchError{mode, r, pos}
			}
			pos++
		}
	}
	if mode == Octet {
		s, err := cs.Bytes(text)
		if err != nil {
			return coding.Segment{}, mode, err
		}
		text = s
	}
	return coding.Segment{Text: text, Mode: mode.coding()}, mode, nil
}

// all reports whether every rune of text is encodable in mode.
func all(text string, mode coding.Mode) bool {
	for _, r := range text {
		if !coding.Is(r, mode) {
			return false
		}
	}
	return true
}
