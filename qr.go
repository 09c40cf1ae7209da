// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes (ISO/IEC 18004).

Encode picks an encoding mode for the whole text, the smallest
version that holds it at the requested error correction level and
the mask with the lowest penalty, unless any of those is given in
the Config.  The result is a Symbol, a matrix of dark and light
modules; package render turns it into images and text.
*/
package qr // import "github.com/AnemonOFF/qrgen"

import (
	"strconv"
	"strings"

	"github.com/AnemonOFF/qrgen/coding"
)

// A Mode selects how text is encoded.
type Mode int

const (
	AutoMode     Mode = iota // choose the most compact of the below
	Numeric                  // digits 0-9
	Alphanumeric             // 0-9, A-Z, space and $%*+-./:
	Octet                    // bytes of the text in the Config's Charset
)

func (m Mode) String() string {
	if AutoMode <= m && m <= Octet {
		return [...]string{"auto", "numeric", "alphanumeric", "octet"}[m]
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

func (m Mode) coding() coding.Mode { return coding.Mode(m - Numeric) }

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	AutoLevel Level = iota // M
	L                      // 20% redundant
	M                      // 38% redundant
	Q                      // 55% redundant
	H                      // 65% redundant
)

func (l Level) String() string {
	if AutoLevel <= l && l <= H {
		return [...]string{"auto", "L", "M", "Q", "H"}[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

func (l Level) coding() coding.Level { return coding.Level(l - L) }

// A Version is a QR version from 1 to 40.
// Version v has 4v+17 modules on a side.
type Version = coding.Version

// AutoVersion selects the smallest version that holds the text.
const AutoVersion Version = 0

// A Mask is a data mask pattern from 0 to 7.
type Mask = coding.Mask

// AutoMask selects the mask with the lowest penalty.
const AutoMask = coding.AutoMask

// Default rendering parameters.
const (
	DefaultModuleSize = 4
	DefaultMargin     = 4
)

// Config holds encoding parameters.
// A zero Config fails Validate only because ModuleSize is 0, and its
// Mask of 0 forces mask pattern 0 rather than AutoMask.
// Start from DefaultConfig.
type Config struct {
	Mode    Mode
	Level   Level
	Version Version // AutoVersion or 1 to 40
	Mask    Mask    // AutoMask or 0 to 7
	Charset Charset // byte representation of Octet text

	// Carried over to the Symbol for renderers.
	ModuleSize int // pixels per module, at least 1
	Margin     int // quiet zone width in modules
}

// DefaultConfig returns a Config choosing everything automatically.
func DefaultConfig() Config {
	return Config{
		Mask:       AutoMask,
		ModuleSize: DefaultModuleSize,
		Margin:     DefaultMargin,
	}
}

// Validate reports the first invalid field of c as a *ConfigError.
func (c *Config) Validate() error {
	switch {
	case c.Mode < AutoMode || c.Mode > Octet:
		return &ConfigError{"mode", c.Mode}
	case c.Level < AutoLevel || c.Level > H:
		return &ConfigError{"level", c.Level}
	case c.Version != AutoVersion && !c.Version.IsValid():
		return &ConfigError{"version", c.Version}
	case c.Mask != AutoMask && !c.Mask.IsValid():
		return &ConfigError{"mask", c.Mask}
	case !c.Charset.IsValid():
		return &ConfigError{"charset", c.Charset}
	case c.ModuleSize < 1:
		return &ConfigError{"module size", c.ModuleSize}
	case c.Margin < 0:
		return &ConfigError{"margin", c.Margin}
	}
	return nil
}

// A Symbol is an encoded QR code.
type Symbol struct {
	Matrix  [][]bool // Matrix[y][x], true is dark
	Size    int      // modules on a side
	Version Version
	Level   Level
	Mask    Mask
	Mode    Mode

	ModuleSize int // pixels per module
	Margin     int // quiet zone width in modules
}

// Black reports whether the module at column x and row y is dark.
// Modules outside the symbol, including the quiet zone, are light.
func (s *Symbol) Black(x, y int) bool {
	return 0 <= x && x < s.Size && 0 <= y && y < s.Size && s.Matrix[y][x]
}

// String returns the symbol as rows of '#' and '.' without
// quiet zone.
func (s *Symbol) String() string {
	var b strings.Builder
	b.Grow((s.Size + 1) * s.Size)
	for _, row := range s.Matrix {
		for _, dark := range row {
			if dark {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Encode encodes text according to cfg.
func Encode(text string, cfg Config) (*Symbol, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seg, mode, err := selectMode(text, cfg.Mode, cfg.Charset)
	if err != nil {
		return nil, err
	}
	level := cfg.Level
	if level == AutoLevel {
		level = M
	}
	v, err := planVersion(seg, level, cfg.Version)
	if err != nil {
		return nil, err
	}
	c, mask, err := coding.Encode(v, level.coding(), cfg.Mask, seg)
	if err != nil {
		return nil, err
	}

	s := &Symbol{
		Matrix:     make([][]bool, c.Size),
		Size:       c.Size,
		Version:    v,
		Level:      level,
		Mask:       mask,
		Mode:       mode,
		ModuleSize: cfg.ModuleSize,
		Margin:     cfg.Margin,
	}
	cells := make([]bool, c.Size*c.Size)
	for y := range s.Matrix {
		s.Matrix[y], cells = cells[:c.Size:c.Size], cells[c.Size:]
		for x := range s.Matrix[y] {
			s.Matrix[y][x] = c.Black(x, y)
		}
	}
	return s, nil
}
