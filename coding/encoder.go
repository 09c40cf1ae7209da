// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Encoder encodes a QR code.
type Encoder struct {
	p *Plan
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	p, err := sharedPlan(version, level)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p, b: NewBits()}, nil
}

// Plan returns a copy of the Plan used by e.
func (e *Encoder) Plan() *Plan { return e.p.clone() }

// Write adds text to e.
func (e *Encoder) Write(text ...Segment) error {
	for _, t := range text {
		if err := t.Encode(e.b, e.p.Version); err != nil {
			return err
		}
	}
	return nil
}

// Bits returns the number of bits written to e.
func (e *Encoder) Bits() int { return e.b.Bits() }

// Reset discards the data written to e.
func (e *Encoder) Reset() { e.b.Reset() }

// Codewords returns the padded data written to e interleaved with
// its check bytes.  It consumes the written data.
func (e *Encoder) Codewords() ([]byte, error) {
	defer e.b.Reset()
	return e.b.AddCheckBytes(e.p.Version, e.p.Level)
}

// Code returns a QR code containing data written to e, masked with
// mask, or with the lowest penalty mask if mask is AutoMask.
// The data is consumed.
func (e *Encoder) Code(mask Mask) (*Code, Mask, error) {
	if mask != AutoMask && !mask.IsValid() {
		return nil, 0, ErrMask
	}
	cw, err := e.Codewords()
	if err != nil {
		return nil, 0, err
	}
	data, err := e.p.Serialise(cw)
	if err != nil {
		return nil, 0, err
	}
	if mask != AutoMask {
		c, err := e.p.Apply(data, mask)
		return c, mask, err
	}
	best := Best(e.p.Candidates(data))
	return best.Code, best.Mask, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(mask Mask, text ...Segment) (*Code, Mask, error) {
	if err := e.Write(text...); err != nil {
		return nil, 0, err
	}
	return e.Code(mask)
}

// Encode encodes text using an Encoder with the given version, level
// and mask.
func Encode(version Version, level Level, mask Mask, text ...Segment) (*Code, Mask, error) {
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, 0, err
	}
	return e.Encode(mask, text...)
}
