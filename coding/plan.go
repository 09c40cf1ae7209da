// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"sync"
)

// A Plan describes how to construct a QR code
// with a specific version and level.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level

	DataBits int // number of data bits
	Size     int // number of pixels on a side
	Stride   int // number of bytes per bitmap row
	Free     int // number of data and check modules

	Map     []byte    // pixel map: 0 is data or checksum, 1 is other
	Pattern [8][]byte // function patterns, format and version, mask
}

// Pre-allocated Plans.  A Plan is created the first time a
// combination of version and level is used and is read-only
// afterwards.
var plans [MaxVersion + 1][H + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns a Plan for a QR code with the given version and
// level.  The Plan is a copy owned by the caller.
func NewPlan(version Version, level Level) (*Plan, error) {
	p, err := sharedPlan(version, level)
	if err != nil {
		return nil, err
	}
	return p.clone(), nil
}

// sharedPlan returns the cached Plan for version and level, building
// it on first use.  The result must not be modified.
func sharedPlan(version Version, level Level) (*Plan, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	p := &plans[version][level]
	p.once.Do(func() {
		pp := vplan(version, level)
		for mask := range pp.Pattern {
			fplan(FormatBits(level, Mask(mask)), pp.Pattern[mask], pp)
			mplan(Mask(mask), pp)
		}
		p.p = pp
	})
	return p.p, nil
}

func (p *Plan) clone() *Plan {
	c := *p
	c.Map = append([]byte(nil), p.Map...)
	for i := range c.Pattern {
		c.Pattern[i] = append([]byte(nil), p.Pattern[i]...)
	}
	return &c
}

func setBit(b []byte, stride, x, y int, v bool) {
	bit := byte(0x80) >> (x & 7)
	if v {
		b[y*stride+x>>3] |= bit
	} else {
		b[y*stride+x>>3] &^= bit
	}
}

func getBit(b []byte, stride, x, y int) bool {
	return b[y*stride+x>>3]&(0x80>>(x&7)) != 0
}

// vplan creates a Plan for the given version with function patterns
// in Pattern[0] and reserved modules set in Map.
func vplan(v Version, l Level) *Plan {
	siz := v.Size()
	stride := (siz + 7) >> 3
	p := &Plan{
		Version:  v,
		Level:    l,
		DataBits: v.DataBits(l),
		Size:     siz,
		Stride:   stride,
	}
	bitmap := make([]byte, stride*siz*(NumMasks+1))
	p.Map, bitmap = bitmap[:stride*siz], bitmap[stride*siz:]
	pat := bitmap[:stride*siz]
	fix := func(x, y int, black bool) {
		setBit(p.Map, stride, x, y, true)
		setBit(pat, stride, x, y, black)
	}

	// Timing strips, overwritten by boxes.
	for i := 8; i < siz-8; i++ {
		fix(i, 6, i&1 == 0)
		fix(6, i, i&1 == 0)
	}

	// Position boxes with separators: 9x9 pixels on top left,
	// 8x9 on top right, 9x8 on bottom left.
	for _, c := range [3][2]int{{3, 3}, {siz - 4, 3}, {3, siz - 4}} {
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				x, y := c[0]+dx, c[1]+dy
				if 0 <= x && x < siz && 0 <= y && y < siz {
					d := max(abs(dx), abs(dy))
					fix(x, y, d != 2 && d != 4)
				}
			}
		}
	}

	// Alignment boxes everywhere except over the position boxes.
	align := vtab[v].align
	last := len(align) - 1
	for i, cx := range align {
		for j, cy := range align {
			if i == 0 && j == 0 || i == 0 && j == last || i == last && j == 0 {
				continue
			}
			alignBox(fix, cx, cy)
		}
	}

	// Format pixels, written per mask by fplan.
	for i := 0; i < 9; i++ {
		setBit(p.Map, stride, 8, i, true)
		setBit(p.Map, stride, i, 8, true)
	}
	for i := 0; i < 8; i++ {
		setBit(p.Map, stride, siz-1-i, 8, true)
		setBit(p.Map, stride, 8, siz-1-i, true)
	}

	// One lonely black pixel.
	fix(8, siz-8, true)

	// Version pattern: 3x6 pixels at (siz-11, 0), 6x3 at (0, siz-11).
	if vb := VersionBits(v); vb != 0 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			bit := vb>>i&1 != 0
			fix(a, b, bit)
			fix(b, a, bit)
		}
	}

	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if !getBit(p.Map, stride, x, y) {
				p.Free++
			}
		}
	}

	sz := len(p.Map)
	for n := sz; n < len(bitmap); {
		n += copy(bitmap[n:], bitmap[:n])
	}
	for i := range p.Pattern {
		p.Pattern[i], bitmap = bitmap[:sz:sz], bitmap[sz:]
	}
	return p
}

// alignBox draws an alignment (small) box centred at x, y.
func alignBox(fix func(x, y int, black bool), x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			fix(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// fplan sets the format bits in b: bits 0-7 down column 8 and right
// to left along row 8 near the top left corner, bits 8-14 continuing
// along row 8 there and up column 8 at the bottom left.
func fplan(fb uint16, b []byte, p *Plan) {
	siz, stride := p.Size, p.Stride
	bit := func(i int) bool { return fb>>i&1 != 0 }
	for i := 0; i <= 5; i++ {
		setBit(b, stride, 8, i, bit(i))
	}
	setBit(b, stride, 8, 7, bit(6))
	setBit(b, stride, 8, 8, bit(7))
	setBit(b, stride, 7, 8, bit(8))
	for i := 9; i < 15; i++ {
		setBit(b, stride, 14-i, 8, bit(i))
	}
	for i := 0; i < 8; i++ {
		setBit(b, stride, siz-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		setBit(b, stride, 8, siz-15+i, bit(i))
	}
}

// mplan adds the mask pattern to the data modules of Pattern[mask].
func mplan(mask Mask, p *Plan) {
	b := p.Pattern[mask]
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			if !getBit(p.Map, p.Stride, x, y) && mask.Invert(x, y) {
				setBit(b, p.Stride, x, y, true)
			}
		}
	}
}

// Serialise writes the codewords to the data modules of a new bitmap
// in zigzag scan order: pairs of columns from the right, skipping
// the vertical timing strip, alternately upwards and downwards, the
// right pixel of each pair first.  The remainder bits are zero.
// Serialise fails if the codewords and remainder bits do not exactly
// fill the data modules.
func (p *Plan) Serialise(codewords []byte) ([]byte, error) {
	siz, stride := p.Size, p.Stride
	bitmap := make([]byte, siz*stride)
	nbit := len(codewords) * 8
	k := 0
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x = 5
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if getBit(p.Map, stride, xx, y) {
					continue
				}
				if k < nbit && codewords[k>>3]&(0x80>>(k&7)) != 0 {
					setBit(bitmap, stride, xx, y, true)
				}
				k++
			}
		}
		up = !up
	}
	if want := nbit + p.Version.RemainderBits(); k != want {
		return nil, fmt.Errorf("%w: %d data modules for %d bits in version %s",
			ErrInternal, k, want, p.Version)
	}
	return bitmap, nil
}

// A Candidate is a QR code with one of the mask patterns applied.
type Candidate struct {
	Mask    Mask
	Penalty int
	Code    *Code
}

// Apply returns the code built from the serialised data bitmap with
// the given mask, format and version information.
func (p *Plan) Apply(data []byte, mask Mask) (*Code, error) {
	if !mask.IsValid() {
		return nil, ErrMask
	}
	c := newCode(p.Size)
	xor(c.Bitmap, data, p.Pattern[mask])
	return c, nil
}

// Candidates returns the code built from the serialised data bitmap
// under every mask pattern, in mask order, with penalties.
func (p *Plan) Candidates(data []byte) []Candidate {
	cands := make([]Candidate, NumMasks)
	for m := range cands {
		c, _ := p.Apply(data, Mask(m))
		cands[m] = Candidate{Mask(m), c.Penalty(), c}
	}
	return cands
}

// Best returns the candidate with the lowest penalty,
// the lowest-numbered mask in case of a tie.
func Best(cands []Candidate) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Penalty < best.Penalty {
			best = c
		}
	}
	return best
}

// xor xors a and b into dst.  a and b may not be shorter than dst.
// dst and a or b should not overlap unless they are the same slice.
func xor(dst, a, b []byte) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
