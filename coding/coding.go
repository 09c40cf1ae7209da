// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: version
// tables, segment encoding, error correction, module placement and
// masking.
//
// All tables are built during package initialisation or, for Plans,
// the first time a version and level are used.  They are never
// modified afterwards, so everything in this package is safe for
// concurrent use except the Encoder, which belongs to one goroutine.
package coding // import "github.com/AnemonOFF/qrgen/coding"

import (
	"errors"
	"strconv"

	"github.com/AnemonOFF/qrgen/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrMask     = errors.New("qr: invalid mask")
	ErrInternal = errors.New("qr: internal error")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// Reed–Solomon encoders indexed by the number of check bytes per
// block.  Only the counts used by the version table are populated.
var rsenc [31]*gf256.RSEncoder

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, lev := range vtab[v].level {
			if rsenc[lev.check] == nil {
				rsenc[lev.check] = gf256.NewRSEncoder(Field, lev.check)
			}
		}
	}
}

// CheckCounts returns the distinct numbers of check bytes per block
// used by QR codes, in increasing order.
func CheckCounts() []int {
	var n []int
	for c, rs := range rsenc {
		if rs != nil {
			n = append(n, c)
		}
	}
	return n
}

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// QR version size classes, which determine the length of
// character count fields.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// TotalBytes returns the number of data and check codewords.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// RemainderBits returns the number of zero bits placed after the
// last codeword.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// Alignment returns the coordinates of alignment pattern centres
// along either axis, or nil for version 1.
func (v Version) Alignment() []int {
	return append([]int(nil), vtab[v].align...)
}

// Blocks returns the number of error correction blocks and the
// number of check bytes in each.
func (v Version) Blocks(l Level) (nblock, check int) {
	lev := vtab[v].level[l]
	return lev.nblock, lev.check
}

// DataBytes returns the number of data bytes that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.bytes - lev.nblock*lev.check
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int {
	return v.DataBytes(l) * 8
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Indicator returns the two bit level indicator used in format
// information: 01 for L, 00 for M, 11 for Q and 10 for H.
func (l Level) Indicator() uint32 { return uint32(l) ^ 1 }
