// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"fmt"
	"io"

	qr "github.com/AnemonOFF/qrgen"
)

// SVG writes a Scalable Vector Graphics image displaying s to w.
// The image is s.ModuleSize pixels per module wide, and the modules
// are drawn as a single path of one rectangle per run of dark
// modules in a row.
func SVG(w io.Writer, s *qr.Symbol) error {
	if err := check(s, true); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	bord := s.Margin
	n := s.Size + 2*bord
	pix := pixels(s)
	fmt.Fprintf(b, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="#fff"/>
<path fill="#000" d="`, pix, pix, n, n)
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; {
			for x < s.Size && !s.Black(x, y) {
				x++
			}
			if x == s.Size {
				break
			}
			start := x
			for x < s.Size && s.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "M%d %dh%dv1h-%dz", start+bord, y+bord,
				x-start, x-start)
		}
	}
	b.WriteString("\"/>\n</svg>\n")
	return b.Flush()
}
