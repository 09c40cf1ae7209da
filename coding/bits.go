// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/skip2/go-qrcode/bitset"

// Bits is a bitstream written most significant bit first.
type Bits struct {
	b *bitset.Bitset
}

// NewBits returns an empty bitstream.
func NewBits() *Bits {
	return &Bits{b: bitset.New()}
}

// Reset empties b.
func (b *Bits) Reset() { b.b = bitset.New() }

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int { return b.b.Len() }

// Write appends the nbit least significant bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	b.b.AppendUint32(v, nbit)
}

// Bytes returns the content of b as codewords.
// Bytes panics if b does not end on a byte boundary.
func (b *Bits) Bytes() []byte {
	n := b.b.Len()
	if n%8 != 0 {
		panic("qr: fractional byte")
	}
	out := make([]byte, n/8)
	for i := range out {
		out[i] = b.b.ByteAt(i * 8)
	}
	return out
}

// PadTo adds up to t zero terminator bits to b, zero bits up to the
// next byte boundary and alternating pad codewords 0xec and 0x11
// until b is n bits long.  n must be a multiple of 8 and no less
// than b.Bits().
func (b *Bits) PadTo(t, n int) {
	if b.Bits() > n {
		panic("qr: too much data")
	}
	b.b.AppendNumBools(min(t, n-b.Bits()), false)
	b.b.AppendNumBools(-b.Bits()&7, false)
	for pad := byte(0xec); b.Bits() < n; pad ^= 0xec ^ 0x11 {
		b.b.AppendByte(pad, 8)
	}
}
