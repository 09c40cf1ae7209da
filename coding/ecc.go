// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Block is an error correction block: a run of data codewords and
// the Reed–Solomon check codewords computed over it.
type Block struct {
	Data  []byte
	Check []byte
}

// SplitBlocks splits data into the error correction blocks of the
// given version and level and computes their check bytes.  len(data)
// must equal v.DataBytes(l).  Each of the first blocks holds
// len(data)/nblock data bytes and each of the last len(data)%nblock
// blocks holds one more.
func SplitBlocks(data []byte, v Version, l Level) ([]Block, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	nd := v.DataBytes(l)
	if len(data) != nd {
		return nil, fmt.Errorf("%w: %d data bytes for version %s-%s, want %d",
			ErrInternal, len(data), v, l, nd)
	}
	nblock, check := v.Blocks(l)
	db := nd / nblock
	normal := nblock - nd%nblock
	rs := rsenc[check]
	blocks := make([]Block, nblock)
	chk := make([]byte, nblock*check)
	for i := range blocks {
		n := db
		if i >= normal {
			n++
		}
		blk := &blocks[i]
		blk.Data, data = data[:n:n], data[n:]
		blk.Check, chk = chk[:check:check], chk[check:]
		rs.ECC(blk.Data, blk.Check)
	}
	return blocks, nil
}

// Interleave returns the final codeword sequence: data codewords
// taken column by column across blocks, then check codewords
// likewise.  Longer blocks contribute their last data codeword after
// all full columns.
func Interleave(blocks []Block) []byte {
	var nd, nc, maxd int
	for _, b := range blocks {
		nd += len(b.Data)
		nc += len(b.Check)
		maxd = max(maxd, len(b.Data))
	}
	out := make([]byte, 0, nd+nc)
	for i := 0; i < maxd; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				out = append(out, b.Data[i])
			}
		}
	}
	if len(blocks) == 0 {
		return out
	}
	for i := range blocks[0].Check {
		for _, b := range blocks {
			out = append(out, b.Check[i])
		}
	}
	return out
}

// AddCheckBytes adds terminator and padding to b for the given
// version and level and returns the interleaved data and check
// codewords.
func (b *Bits) AddCheckBytes(v Version, l Level) ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	nb := v.DataBits(l)
	if b.Bits() > nb {
		return nil, fmt.Errorf("qr: cannot encode %d bits into %d-bit code",
			b.Bits(), nb)
	}
	b.PadTo(4, nb)
	blocks, err := SplitBlocks(b.Bytes(), v, l)
	if err != nil {
		return nil, err
	}
	cw := Interleave(blocks)
	if len(cw) != v.TotalBytes() {
		return nil, fmt.Errorf("%w: %d codewords for version %s, want %d",
			ErrInternal, len(cw), v, v.TotalBytes())
	}
	return cw, nil
}
