// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import qr "github.com/AnemonOFF/qrgen"

// packRow fills row with the pixels of module row y of s, most
// significant bit first, one bit per pixel.  Dark pixels are set if
// dark is true, light pixels otherwise.  Trailing bits are padding
// in the light colour.
func packRow(row []byte, s *qr.Symbol, y int, dark bool) {
	var light byte
	if !dark {
		light = 0xff
	}
	for i := range row {
		row[i] = light
	}
	scale, bord := s.ModuleSize, s.Margin
	for x := 0; x < s.Size; x++ {
		if !s.Black(x, y) {
			continue
		}
		for p := (x + bord) * scale; p < (x+bord+1)*scale; p++ {
			row[p>>3] ^= 0x80 >> (p & 7)
		}
	}
}
