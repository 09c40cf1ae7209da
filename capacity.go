// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "github.com/AnemonOFF/qrgen/coding"

// fits reports whether seg fits the data capacity of version v at
// level l, and returns its length and the capacity in bits.
func fits(seg coding.Segment, v Version, l Level) (ok bool, need, have int) {
	need = seg.EncodedLength(v)
	have = v.DataBits(l.coding())
	return need <= have && len(seg.Text) < 1<<seg.Mode.CountLength(v), need, have
}

// planVersion returns the version to encode seg in at level l: the
// requested version if it is large enough, or the smallest large
// enough version if version is AutoVersion.
func planVersion(seg coding.Segment, l Level, version Version) (Version, error) {
	if version != AutoVersion {
		if ok, need, have := fits(seg, version, l); !ok {
			return 0, &CapacityError{version, l, need, have, ErrVersionTooSmall}
		}
		return version, nil
	}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		if ok, _, _ := fits(seg, v, l); ok {
			return v, nil
		}
	}
	_, need, have := fits(seg, coding.MaxVersion, l)
	return 0, &CapacityError{coding.MaxVersion, l, need, have, ErrDataTooLong}
}

// Capacity returns the maximum number of characters in mode m that
// version v holds at level l.
func Capacity(v Version, l Level, m Mode) int {
	if !v.IsValid() || l < L || l > H || m < Numeric || m > Octet {
		return 0
	}
	cm := m.coding()
	have := v.DataBits(l.coding()) - 4 - cm.CountLength(v)
	n := 0
	for lo, hi := 0, have; lo <= hi; {
		mid := (lo + hi) / 2
		if cm.EncodedLength(mid) <= have {
			n, lo = mid, mid+1
		} else {
			hi = mid - 1
		}
	}
	return min(n, 1<<cm.CountLength(v)-1)
}
