// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// BCH parameters for format and version information.
const (
	formatPoly  = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	formatCheck = 10     // check bits in format information
	formatXOR   = 0x5412 // applied after BCH
	versionPoly = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
	versionBits = 6
	versionChk  = 12
)

// BCH returns the nbit-bit word followed by ncheck check bits, the
// remainder of word·x^ncheck divided by the generator gen.
func BCH(word uint32, nbit int, gen uint32, ncheck int) uint32 {
	return word<<ncheck | BCHRemainder(word<<ncheck, nbit+ncheck, gen, ncheck)
}

// BCHRemainder returns the remainder of the n-bit codeword divided
// by the generator gen of degree ncheck.  It is zero for codewords
// produced by BCH.
func BCHRemainder(code uint32, n int, gen uint32, ncheck int) uint32 {
	for i := n - 1; i >= ncheck; i-- {
		if code>>i&1 != 0 {
			code ^= gen << (i - ncheck)
		}
	}
	return code
}

// Format and version words, computed at init.
var (
	ftab  [H + 1][8]uint16
	vwtab [MaxVersion + 1]uint32
)

func init() {
	for l := L; l <= H; l++ {
		for m := range ftab[l] {
			w := BCH(l.Indicator()<<3|uint32(m), 5, formatPoly, formatCheck)
			ftab[l][m] = uint16(w ^ formatXOR)
		}
	}
	for v := Version(7); v <= MaxVersion; v++ {
		vwtab[v] = BCH(uint32(v), versionBits, versionPoly, versionChk)
	}
}

// FormatBits returns the 15 bit masked format information word for
// the given level and mask.
func FormatBits(l Level, m Mask) uint16 {
	return ftab[l][m]
}

// VersionBits returns the 18 bit version information word, or 0 for
// versions below 7, which carry none.
func VersionBits(v Version) uint32 {
	return vwtab[v]
}
