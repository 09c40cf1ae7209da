// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"

	qr "github.com/AnemonOFF/qrgen"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

// A pngWriter accumulates PNG chunks.
type pngWriter struct {
	buf bytes.Buffer
	tmp [13]byte // chunk payload scratch
	n   [4]byte  // length and CRC scratch
}

func (w *pngWriter) writeChunk(name string, data []byte) {
	binary.BigEndian.PutUint32(w.n[:], uint32(len(data)))
	w.buf.Write(w.n[:])
	w.buf.WriteString(name)
	w.buf.Write(data)
	crc := crc32.NewIEEE()
	crc.Write([]byte(name))
	crc.Write(data)
	binary.BigEndian.PutUint32(w.n[:], crc.Sum32())
	w.buf.Write(w.n[:])
}

// PNG writes a 1-bit greyscale PNG image displaying s to w.
func PNG(w io.Writer, s *qr.Symbol) error {
	if w == nil {
		return ErrArgs
	}
	b, err := encodePNG(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func encodePNG(s *qr.Symbol) ([]byte, error) {
	if err := check(s, true); err != nil {
		return nil, err
	}
	pix := pixels(s)
	var w pngWriter
	w.buf.WriteString(pngHeader)

	// Header block
	binary.BigEndian.PutUint32(w.tmp[0:4], uint32(pix))
	binary.BigEndian.PutUint32(w.tmp[4:8], uint32(pix))
	w.tmp[8] = 1  // 1-bit
	w.tmp[9] = 0  // gray
	w.tmp[10] = 0 // deflate
	w.tmp[11] = 0 // adaptive filtering
	w.tmp[12] = 0 // no interlace
	w.writeChunk("IHDR", w.tmp[:13])

	// Image data: each scanline is a filter type byte followed by
	// the pixels, black being 0.
	var idat bytes.Buffer
	z, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	row := make([]byte, 1+(pix+7)/8)
	bord := s.Margin
	for y := -bord; y < s.Size+bord; y++ {
		if y == -bord || 0 <= y && y <= s.Size {
			packRow(row[1:], s, y, false)
		}
		for i := 0; i < s.ModuleSize; i++ {
			if _, err := z.Write(row); err != nil {
				return nil, err
			}
		}
	}
	if err := z.Close(); err != nil {
		return nil, err
	}
	w.writeChunk("IDAT", idat.Bytes())
	w.writeChunk("IEND", nil)
	return w.buf.Bytes(), nil
}
