// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask identifies one of the eight QR data mask patterns.
type Mask int

// AutoMask asks the encoder to choose the mask with the lowest
// penalty.
const AutoMask Mask = -1

// NumMasks is the number of mask patterns.
const NumMasks = 8

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// IsValid reports whether m is a mask pattern number.
func (m Mask) IsValid() bool { return 0 <= m && m < NumMasks }

// Invert reports whether mask m inverts the module at column x
// and row y.  m must be valid.
func (m Mask) Invert(x, y int) bool {
	switch m {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (y/2+x/3)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	}
	panic("qr: invalid mask " + strconv.Itoa(int(m)))
}
