// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed–Solomon remainder computation over it.
package gf256 // import "github.com/AnemonOFF/qrgen/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is the 255 sentinel
	exp [510]byte // doubled so that exp[a+b] needs no reduction
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The polynomial must be of degree 8 and α must
// generate the whole multiplicative group.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Generator returns the coefficients of the monic generator
// polynomial (x - α⁰)(x - α¹)…(x - αⁿ⁻¹), highest degree first.
// The leading coefficient is always 1.
func (f *Field) Generator(n int) []byte {
	p := make([]byte, 1, n+1)
	p[0] = 1
	for i := 0; i < n; i++ {
		// p *= x + αⁱ
		c := f.Exp(i)
		p = append(p, 0)
		for j := len(p) - 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], c)
		}
	}
	return p
}

// An RSEncoder computes Reed–Solomon check bytes for a fixed number
// of check bytes.  It holds no mutable state and may be shared.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte // generator coefficients
	lgen []byte // log of gen[1:], 255 for zero coefficients
}

// NewRSEncoder returns a new Reed–Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid check byte count " + strconv.Itoa(c))
	}
	gen := f.Generator(c)
	lgen := make([]byte, c)
	for i, v := range gen[1:] {
		lgen[i] = f.log[v]
	}
	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// Check returns the number of check bytes rs produces.
func (rs *RSEncoder) Check() int { return rs.c }

// Generator returns a copy of the generator polynomial coefficients,
// highest degree first.
func (rs *RSEncoder) Generator() []byte {
	return append([]byte(nil), rs.gen...)
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed–Solomon parameters.
// The check slice must be at least rs.Check() bytes long.
func (rs *RSEncoder) ECC(data, check []byte) {
	c := rs.c
	if len(check) < c {
		panic("gf256: invalid check byte length")
	}
	check = check[:c]
	clear(check)
	f := rs.f
	// Long division of data·xᶜ by the generator: check holds the
	// running remainder and each data byte shifts one term in.
	for _, d := range data {
		fb := d ^ check[0]
		copy(check, check[1:])
		check[c-1] = 0
		if fb == 0 {
			continue
		}
		lfb := int(f.log[fb])
		for i, lg := range rs.lgen {
			if lg != 255 {
				check[i] ^= f.exp[lfb+int(lg)]
			}
		}
	}
}
