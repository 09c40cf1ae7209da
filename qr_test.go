// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnemonOFF/qrgen/coding"
)

func cfgWith(f func(*Config)) Config {
	cfg := DefaultConfig()
	f(&cfg)
	return cfg
}

func TestEncodeDefaults(t *testing.T) {
	require := require.New(t)

	s, err := Encode("HELLO WORLD", DefaultConfig())
	require.NoError(err)
	require.Equal(Version(1), s.Version)
	require.Equal(21, s.Size)
	require.Equal(M, s.Level)
	require.Equal(Alphanumeric, s.Mode)
	require.True(s.Mask.IsValid())
	require.Equal(DefaultModuleSize, s.ModuleSize)
	require.Equal(DefaultMargin, s.Margin)
	require.Len(s.Matrix, 21)
	for _, row := range s.Matrix {
		require.Len(row, 21)
	}
	require.Len(s.String(), 21*22)
}

func TestEncodeStructure(t *testing.T) {
	require := require.New(t)

	for _, text := range []string{"", "0", "HELLO WORLD", "https://example.com/", strings.Repeat("x", 500)} {
		s, err := Encode(text, DefaultConfig())
		require.NoError(err)
		require.Equal(s.Version.Size(), s.Size)

		// Position boxes.
		for i := 0; i < 7; i++ {
			require.True(s.Black(i, 0))
			require.True(s.Black(s.Size-1-i, 0))
			require.True(s.Black(0, s.Size-1-i))
			require.True(s.Black(i, 6))
		}
		require.False(s.Black(7, 0))
		require.False(s.Black(1, 1))
		require.True(s.Black(3, 3))

		// Timing and the dark module.
		for i := 8; i < s.Size-8; i++ {
			require.Equal(i%2 == 0, s.Black(i, 6))
			require.Equal(i%2 == 0, s.Black(6, i))
		}
		require.True(s.Black(8, s.Size-8))

		// Format information, first copy.
		var fb uint16
		for i := 0; i < 15; i++ {
			x, y := 8, i
			switch {
			case i == 6:
				y = 7
			case i == 7:
				y = 8
			case i == 8:
				x, y = 7, 8
			case i > 8:
				x, y = 14-i, 8
			}
			if s.Black(x, y) {
				fb |= 1 << i
			}
		}
		require.Equal(coding.FormatBits(s.Level.coding(), s.Mask), fb, "text %q", text)

		// Quiet zone is light.
		require.False(s.Black(-1, 0))
		require.False(s.Black(s.Size, s.Size))
	}
}

func TestEncodeDeterministic(t *testing.T) {
	require := require.New(t)

	text := "The quick brown fox jumps over the lazy dog 0123456789"
	want, err := Encode(text, DefaultConfig())
	require.NoError(err)

	var wg sync.WaitGroup
	got := make([]*Symbol, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = Encode(text, DefaultConfig())
		}(i)
	}
	wg.Wait()
	for _, s := range got {
		require.Equal(want, s)
	}
}

func TestEncodeModes(t *testing.T) {
	tests := []struct {
		text string
		mode Mode
	}{
		{"", Numeric},
		{"0123456789", Numeric},
		{"HELLO WORLD", Alphanumeric},
		{"$%*+-./: 09AZ", Alphanumeric},
		{"Hello, world", Octet},
		{"日本語", Octet},
		{"\xff\xfe", Octet},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require := require.New(t)
			s, err := Encode(tt.text, DefaultConfig())
			require.NoError(err)
			require.Equal(tt.mode, s.Mode)
			require.Equal(Version(1), s.Version)
		})
	}
}

func TestEncodeLevelAndMask(t *testing.T) {
	require := require.New(t)

	for l := L; l <= H; l++ {
		for m := Mask(0); m < coding.NumMasks; m++ {
			s, err := Encode("01234567", cfgWith(func(c *Config) {
				c.Level = l
				c.Mask = m
			}))
			require.NoError(err)
			require.Equal(l, s.Level)
			require.Equal(m, s.Mask)
		}
	}

	s, err := Encode("01234567", cfgWith(func(c *Config) { c.Version = 10 }))
	require.NoError(err)
	require.Equal(Version(10), s.Version)
	require.Equal(57, s.Size)
}

func TestEncodeCapacity(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		level   Level
		version Version
		err     error
	}{
		{"numeric max", strings.Repeat("1", 7089), L, 40, nil},
		{"numeric over", strings.Repeat("1", 7090), L, 0, ErrDataTooLong},
		{"alphanumeric max", strings.Repeat("A", 4296), L, 40, nil},
		{"alphanumeric over", strings.Repeat("A", 4297), L, 0, ErrDataTooLong},
		{"octet max", strings.Repeat("a", 2953), L, 40, nil},
		{"octet over", strings.Repeat("a", 2954), L, 0, ErrDataTooLong},
		{"octet max H", strings.Repeat("a", 1273), H, 40, nil},
		{"octet over H", strings.Repeat("a", 1274), H, 0, ErrDataTooLong},
		{"1-M numeric", strings.Repeat("1", 34), M, 1, nil},
		{"2-M numeric", strings.Repeat("1", 35), M, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			s, err := Encode(tt.text, cfgWith(func(c *Config) { c.Level = tt.level }))
			if tt.err != nil {
				require.ErrorIs(err, tt.err)
				require.Nil(s)
				var ce *CapacityError
				require.ErrorAs(err, &ce)
				require.Greater(ce.Need, ce.Have)
				return
			}
			require.NoError(err)
			require.Equal(tt.version, s.Version)
		})
	}
}

func TestEncodeVersionTooSmall(t *testing.T) {
	require := require.New(t)

	_, err := Encode("HELLO WORLD", cfgWith(func(c *Config) {
		c.Level = H
		c.Version = 1
	}))
	require.ErrorIs(err, ErrVersionTooSmall)
	require.False(errors.Is(err, ErrDataTooLong))
	var ce *CapacityError
	require.ErrorAs(err, &ce)
	require.Equal(&CapacityError{1, H, 74, 72, ErrVersionTooSmall}, ce)
	require.EqualError(err, "qr: 74 bits do not fit version 1-H (72 bits)")

	s, err := Encode("HELLO WORLD", cfgWith(func(c *Config) {
		c.Level = Q
		c.Version = 1
	}))
	require.NoError(err)
	require.Equal(Version(1), s.Version)
}

func TestEncodeModeMismatch(t *testing.T) {
	tests := []struct {
		text    string
		mode    Mode
		charset Charset
		want    ModeMismatchError
	}{
		{"12a4", Numeric, UTF8, ModeMismatchError{Numeric, 'a', 2}},
		{"12 4", Numeric, UTF8, ModeMismatchError{Numeric, ' ', 2}},
		{"HELLO world", Alphanumeric, UTF8, ModeMismatchError{Alphanumeric, 'w', 6}},
		{"AÉ", Alphanumeric, UTF8, ModeMismatchError{Alphanumeric, 'É', 1}},
		{"é日", Octet, Latin1, ModeMismatchError{Octet, '日', 1}},
		{"日本한", Octet, ShiftJIS, ModeMismatchError{Octet, '한', 2}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require := require.New(t)
			_, err := Encode(tt.text, cfgWith(func(c *Config) {
				c.Mode = tt.mode
				c.Charset = tt.charset
			}))
			require.ErrorIs(err, ErrModeMismatch)
			var me *ModeMismatchError
			require.ErrorAs(err, &me)
			require.Equal(tt.want, *me)
		})
	}
}

func TestEncodeCharset(t *testing.T) {
	require := require.New(t)

	text := "ééééééé"
	s, err := Encode(text, cfgWith(func(c *Config) { c.Level = H }))
	require.NoError(err)
	require.Equal(Version(2), s.Version)

	s, err = Encode(text, cfgWith(func(c *Config) {
		c.Level = H
		c.Charset = Latin1
	}))
	require.NoError(err)
	require.Equal(Version(1), s.Version)

	b, err := ShiftJIS.Bytes("日本語")
	require.NoError(err)
	require.Equal("\x93\xfa\x96\x7b\x8c\xea", b)
	s, err = Encode("日本語", cfgWith(func(c *Config) {
		c.Level = H
		c.Charset = ShiftJIS
	}))
	require.NoError(err)
	require.Equal(Octet, s.Mode)

	b, err = UTF8.Bytes("\xff")
	require.NoError(err)
	require.Equal("\xff", b)
}

func TestEncodeConfigErrors(t *testing.T) {
	tests := []struct {
		field string
		set   func(*Config)
	}{
		{"mode", func(c *Config) { c.Mode = 4 }},
		{"level", func(c *Config) { c.Level = -1 }},
		{"version", func(c *Config) { c.Version = 41 }},
		{"version", func(c *Config) { c.Version = -2 }},
		{"mask", func(c *Config) { c.Mask = 8 }},
		{"mask", func(c *Config) { c.Mask = -2 }},
		{"charset", func(c *Config) { c.Charset = 3 }},
		{"module size", func(c *Config) { c.ModuleSize = 0 }},
		{"margin", func(c *Config) { c.Margin = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			require := require.New(t)
			_, err := Encode("1", cfgWith(tt.set))
			require.ErrorIs(err, ErrConfig)
			var ce *ConfigError
			require.ErrorAs(err, &ce)
			require.Equal(tt.field, ce.Field)
		})
	}

	_, err := Encode("1", Config{})
	require.ErrorIs(t, err, ErrConfig)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "module size", ce.Field)
	cfg := cfgWith(func(c *Config) { c.Margin = 0 })
	require.NoError(t, cfg.Validate())
}

func TestEncodeZeroMask(t *testing.T) {
	require := require.New(t)

	s, err := Encode("1234", Config{ModuleSize: 1})
	require.NoError(err)
	require.Equal(Mask(0), s.Mask)
	auto, err := Encode("1234", DefaultConfig())
	require.NoError(err)
	require.Equal(s.Version, auto.Version)
}

func TestStrings(t *testing.T) {
	require := require.New(t)
	require.Equal("auto", AutoMode.String())
	require.Equal("octet", Octet.String())
	require.Equal("mode(9)", Mode(9).String())
	require.Equal("auto", AutoLevel.String())
	require.Equal("Q", Q.String())
	require.Equal("level(-3)", Level(-3).String())
	require.Equal("shift-jis", ShiftJIS.String())
	require.Equal("charset(4)", Charset(4).String())
}

func BenchmarkEncode(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		text := strings.Repeat("a", n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Encode(text, DefaultConfig()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
