// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
}

func newCode(siz int) *Code {
	stride := (siz + 7) >> 3
	return &Code{Bitmap: make([]byte, siz*stride), Size: siz, Stride: stride}
}

// Black reports whether the module at column x and row y is black.
// Modules outside the grid are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Penalty weights, ISO/IEC 18004:2015 section 7.8.3.
const (
	MinRun  = 5  // N1 applies to runs at least this long
	RunPP   = 3  // N1: points for a run of MinRun, plus 1 per extra module
	BoxPP   = 3  // N2: points per 2x2 box
	FindPP  = 40 // N3: points per finder-like pattern
	BalPP   = 10 // N4: points per 5% deviation from 50% dark
	finderQ = 4  // light modules required beside a finder-like pattern
)

// Penalty returns the penalty value for a QR code, used for
// choosing the mask.
//
// Total penalty is the sum of penalties for runs and boxes of
// same-colour modules, finder-like patterns and colour balance:
//
//   - runs of n ≥ 5 modules in a row or column score n-2
//   - each, possibly overlapping, 2x2 box of one colour scores 3
//   - each dark:light:dark:light:dark run sequence in ratio
//     1:1:3:1:1 with at least 4 units of light on either side
//     inside the symbol scores 40, in rows and columns
//   - k = |20·dark - 10·total| / total scores 10k
func (c *Code) Penalty() int {
	siz := c.Size
	p := 0
	runs := make([]int, 0, siz+2)
	for i := 0; i < siz; i++ {
		runs = c.runs(runs[:0], i, true)
		p += runPenalty(runs)
		runs = c.runs(runs[:0], i, false)
		p += runPenalty(runs)
	}

	dark := 0
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			b := c.Black(x, y)
			if b {
				dark++
			}
			if x+1 < siz && y+1 < siz && c.Black(x+1, y) == b &&
				c.Black(x, y+1) == b && c.Black(x+1, y+1) == b {
				p += BoxPP
			}
		}
	}
	total := siz * siz
	p += BalPP * (abs(20*dark-10*total) / total)
	return p
}

// runs appends to dst the run lengths of row i (or column i if row
// is false), starting and ending with a possibly empty white run.
// White runs have even indices and black runs odd.
func (c *Code) runs(dst []int, i int, row bool) []int {
	dst = append(dst, 0)
	black := false
	for j := 0; j < c.Size; j++ {
		x, y := j, i
		if !row {
			x, y = i, j
		}
		if c.Black(x, y) != black {
			dst = append(dst, 0)
			black = !black
		}
		dst[len(dst)-1]++
	}
	if black {
		dst = append(dst, 0)
	}
	return dst
}

// runPenalty returns the run and finder penalties of one line given
// its run lengths.
func runPenalty(runs []int) int {
	p := 0
	for _, n := range runs {
		if n >= MinRun {
			p += RunPP + n - MinRun
		}
	}
	for i := 5; i < len(runs); i += 2 {
		u := runs[i]
		if runs[i-1] == u && runs[i-2] == 3*u && runs[i-3] == u &&
			runs[i-4] == u &&
			(runs[i-5] >= finderQ*u || runs[i+1] >= finderQ*u) {
			p += FindPP
		}
	}
	return p
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
