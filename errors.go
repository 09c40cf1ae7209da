// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"fmt"

	"github.com/AnemonOFF/qrgen/coding"
)

// Errors returned by Encode, to be matched with errors.Is.
var (
	ErrConfig          = errors.New("qr: invalid configuration")
	ErrModeMismatch    = errors.New("qr: text not encodable in mode")
	ErrVersionTooSmall = errors.New("qr: version too small")
	ErrDataTooLong     = errors.New("qr: data too long")
	ErrInternal        = coding.ErrInternal
)

// ConfigError describes an out of range Config field.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("qr: invalid %s %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// ModeMismatchError describes the first character of the text
// that the requested mode cannot encode.
type ModeMismatchError struct {
	Mode Mode
	Rune rune
	Pos  int // in runes
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("qr: %q at position %d not encodable in %s mode",
		e.Rune, e.Pos, e.Mode)
}

func (e *ModeMismatchError) Unwrap() error { return ErrModeMismatch }

// CapacityError describes text that does not fit the requested
// version (ErrVersionTooSmall) or any version (ErrDataTooLong).
type CapacityError struct {
	Version Version // requested version, or 40
	Level   Level
	Need    int // bits
	Have    int // bits
	Err     error
}

func (e *CapacityError) Error() string {
	if e.Err == ErrDataTooLong {
		return fmt.Sprintf("qr: %d bits exceed the largest code at level %s (%d bits)",
			e.Need, e.Level, e.Have)
	}
	return fmt.Sprintf("qr: %d bits do not fit version %s-%s (%d bits)",
		e.Need, e.Version, e.Level, e.Have)
}

func (e *CapacityError) Unwrap() error { return e.Err }
