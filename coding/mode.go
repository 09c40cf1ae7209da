// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mode is a QR segment encoding mode.
type Mode int

// Predefined encoding modes.
const (
	Numeric      Mode = iota // digits 0-9
	Alphanumeric             // 0-9, A-Z, space and $%*+-./:
	Byte                     // any data, 8 bits per byte
)

var modes = [...]struct {
	name      string
	indicator uint32
	count     [3]int // count field length by size class
}{
	Numeric:      {"numeric", 1, [3]int{10, 12, 14}},
	Alphanumeric: {"alphanumeric", 2, [3]int{9, 11, 13}},
	Byte:         {"byte", 4, [3]int{8, 16, 16}},
}

func (m Mode) String() string {
	if m.IsValid() {
		return modes[m].name
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is one of the predefined modes.
func (m Mode) IsValid() bool { return Numeric <= m && m <= Byte }

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint32 { return modes[m].indicator }

// CountLength returns the length of the character count field
// in version v.
func (m Mode) CountLength(v Version) int {
	return modes[m].count[v.SizeClass()]
}

// EncodedLength returns the length in bits of n characters
// encoded in mode m, excluding the header.
func (m Mode) EncodedLength(n int) int {
	switch m {
	case Numeric:
		return n/3*10 + [3]int{0, 4, 7}[n%3]
	case Alphanumeric:
		return n/2*11 + n%2*6
	}
	return n * 8
}

// Length returns the length in bits of n characters encoded in
// mode m in version v, including the mode indicator and the
// character count.
func (m Mode) Length(n int, v Version) int {
	return 4 + m.CountLength(v) + m.EncodedLength(n)
}

// Is reports whether r is encodable in mode.
func Is(r rune, mode Mode) bool {
	switch mode {
	case Numeric:
		return uint32(r-'0') < 10
	case Alphanumeric:
		return alphamask>>(uint32(r)-' ')&1 != 0
	case Byte:
		return true
	}
	return false
}

// A Segment describes a QR code segment.  Byte mode text is
// taken as raw bytes.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if e.Mode.IsValid() {
		return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
	}
	return fmt.Sprintf("qr: invalid mode %d", e.Mode)
}

// CountError represents a segment whose character count does not
// fit the count field of a version.
type CountError struct {
	Mode
	Version
	Count int
}

func (e CountError) Error() string {
	return fmt.Sprintf("qr: %d %s characters do not fit the count field of version %s",
		e.Count, e.Mode, e.Version)
}

// IsValid reports whether seg is encodable.
func (seg Segment) IsValid() bool {
	if seg.Mode == Byte {
		return true
	}
	if !seg.Mode.IsValid() {
		return false
	}
	for i := 0; i < len(seg.Text); i++ {
		if !Is(rune(seg.Text[i]), seg.Mode) {
			return false
		}
	}
	return true
}

// EncodedLength returns the encoded length in bits of seg in
// version v, including the header.  The segment is not validated.
func (seg Segment) EncodedLength(v Version) int {
	return seg.Mode.Length(len(seg.Text), v)
}

// Encode writes seg encoded for version v to b.
func (seg Segment) Encode(b *Bits, v Version) error {
	if !seg.IsValid() {
		return SegmentError(seg)
	}
	s := seg.Text
	if n := len(s); n >= 1<<seg.Mode.CountLength(v) {
		return CountError{seg.Mode, v, n}
	}
	b.Write(seg.Mode.Indicator(), 4)
	b.Write(uint32(len(s)), seg.Mode.CountLength(v))
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(digits(s[:3]), 10)
		}
		if len(s) > 0 {
			b.Write(digits(s), 3*len(s)+1)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) > 0 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	default:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	}
	return nil
}

// digits returns the decimal value of a validated numeric string.
func digits(s string) uint32 {
	var n uint32
	for i := 0; i < len(s); i++ {
		n = n*10 + uint32(s[i]-'0')
	}
	return n
}
