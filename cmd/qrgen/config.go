package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	qr "github.com/AnemonOFF/qrgen"
)

const envPrefix = "QRGEN_"

// settings are the command's defaults, read from QRGEN_* variables
// and overridden by flags.
type settings struct {
	Mode     string `env:"MODE" envDefault:"auto"`
	Level    string `env:"LEVEL" envDefault:"auto"`
	Version  int    `env:"VERSION" envDefault:"0"`
	Mask     int    `env:"MASK" envDefault:"-1"`
	Charset  string `env:"CHARSET" envDefault:"utf-8"`
	Scale    int    `env:"SCALE" envDefault:"4"`
	Margin   int    `env:"MARGIN" envDefault:"4"`
	Type     string `env:"TYPE"`
	Output   string `env:"OUTPUT"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// loadSettings reads settings from environ, falling back to the
// variables in dotenv if that file exists.
func loadSettings(environ map[string]string, dotenv string) (settings, error) {
	var st settings
	vars := make(map[string]string)
	if dotenv != "" {
		m, err := godotenv.Read(dotenv)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return st, err
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	for k, v := range environ {
		vars[k] = v
	}
	err := env.ParseWithOptions(&st, env.Options{
		Environment: vars,
		Prefix:      envPrefix,
	})
	return st, err
}

var (
	modeNames = map[string]qr.Mode{
		"auto":         qr.AutoMode,
		"numeric":      qr.Numeric,
		"alphanumeric": qr.Alphanumeric,
		"octet":        qr.Octet,
		"byte":         qr.Octet,
	}
	levelNames = map[string]qr.Level{
		"auto": qr.AutoLevel,
		"l":    qr.L,
		"m":    qr.M,
		"q":    qr.Q,
		"h":    qr.H,
	}
	charsetNames = map[string]qr.Charset{
		"utf-8":      qr.UTF8,
		"utf8":       qr.UTF8,
		"latin-1":    qr.Latin1,
		"latin1":     qr.Latin1,
		"iso-8859-1": qr.Latin1,
		"shift-jis":  qr.ShiftJIS,
		"sjis":       qr.ShiftJIS,
	}
)

func lookup[T any](m map[string]T, what, s string) (T, error) {
	v, ok := m[strings.ToLower(s)]
	if !ok {
		return v, fmt.Errorf("%q: unknown %s", s, what)
	}
	return v, nil
}

// config converts st to an encoder configuration.
func (st *settings) config() (qr.Config, error) {
	cfg := qr.DefaultConfig()
	var err error
	if cfg.Mode, err = lookup(modeNames, "mode", st.Mode); err != nil {
		return cfg, err
	}
	if cfg.Level, err = lookup(levelNames, "level", st.Level); err != nil {
		return cfg, err
	}
	if cfg.Charset, err = lookup(charsetNames, "charset", st.Charset); err != nil {
		return cfg, err
	}
	cfg.Version = qr.Version(st.Version)
	cfg.Mask = qr.Mask(st.Mask)
	cfg.ModuleSize = st.Scale
	cfg.Margin = st.Margin
	return cfg, cfg.Validate()
}

func (st *settings) logLevel() (log.Level, error) {
	return log.ParseLevel(st.LogLevel)
}
