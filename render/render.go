// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws QR symbols as images and text.
//
// Every renderer surrounds the symbol with s.Margin modules of quiet
// zone.  Image formats draw each module as an s.ModuleSize pixel
// square; text formats ignore s.ModuleSize.
package render // import "github.com/AnemonOFF/qrgen/render"

import (
	"errors"
	"image"
	"io"

	qr "github.com/AnemonOFF/qrgen"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
)

// maxPixels bounds the side of an image, in pixels.
const maxPixels = 32767 * 8

func check(s *qr.Symbol, scaled bool) error {
	if s == nil || s.Size <= 0 || len(s.Matrix) != s.Size ||
		s.Margin < 0 || scaled && s.ModuleSize <= 0 {
		return ErrArgs
	}
	if scaled && s.ModuleSize*(s.Size+2*s.Margin) > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// pixels returns the side of the image of s, in pixels.
func pixels(s *qr.Symbol) int {
	return s.ModuleSize * (s.Size + 2*s.Margin)
}

// Image returns an image displaying s, or nil if s cannot be drawn.
func Image(s *qr.Symbol) image.Image {
	if check(s, true) != nil {
		return nil
	}
	pix := pixels(s)
	img := image.NewGray(image.Rect(0, 0, pix, pix))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	scale, bord := s.ModuleSize, s.Margin
	for y := 0; y < s.Size; y++ {
		for x := 0; x < s.Size; x++ {
			if !s.Matrix[y][x] {
				continue
			}
			r := image.Rect(0, 0, scale, scale).
				Add(image.Pt((x+bord)*scale, (y+bord)*scale))
			for py := r.Min.Y; py < r.Max.Y; py++ {
				row := img.Pix[img.PixOffset(r.Min.X, py):]
				for i := 0; i < scale; i++ {
					row[i] = 0
				}
			}
		}
	}
	return img
}

// Text writes s to w using Unicode half blocks, two rows of modules
// per line of text, for display on a terminal with a dark background.
// Dark modules are drawn as spaces.
func Text(w io.Writer, s *qr.Symbol) error {
	if err := check(s, false); err != nil {
		return err
	}
	// Indexed by upper | lower<<1, true meaning light.
	blocks := [4]string{" ", "▀", "▄", "█"}
	bord := s.Margin
	b := make([]byte, 0, (s.Size+2*bord)*(s.Size/2+bord+1)*3)
	for y := -bord; y < s.Size+bord; y += 2 {
		for x := -bord; x < s.Size+bord; x++ {
			var i int
			if !s.Black(x, y) {
				i |= 1
			}
			if !s.Black(x, y+1) {
				i |= 2
			}
			b = append(b, blocks[i]...)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}

// ASCII writes s to w with "##" for each dark module and two spaces
// for each light one.
func ASCII(w io.Writer, s *qr.Symbol) error {
	if err := check(s, false); err != nil {
		return err
	}
	bord := s.Margin
	pix := s.Size + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < s.Size+bord; y++ {
		for x := -bord; x < s.Size+bord; x++ {
			var p byte = ' '
			if s.Black(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
