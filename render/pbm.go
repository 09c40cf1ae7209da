// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"io"
	"strconv"

	qr "github.com/AnemonOFF/qrgen"
)

// PBM writes a binary Portable Bit Map image displaying s to w, for
// use with netpbm.
func PBM(w io.Writer, s *qr.Symbol) error {
	if err := check(s, true); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	length := pixels(s)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	bord := s.Margin
	for y := -bord; y < s.Size+bord; y++ {
		// Quiet zone rows are zero; row Size clears the last data row.
		if 0 <= y && y <= s.Size {
			packRow(row, s, y, true)
		}
		for i := 0; i < s.ModuleSize; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
