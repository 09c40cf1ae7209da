// Command qrgen encodes text as a QR code.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	qr "github.com/AnemonOFF/qrgen"
	"github.com/AnemonOFF/qrgen/render"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// dotenv is the file QRGEN_* defaults are read from, if present.
var dotenv = ".env"

var encoders = map[string]func(io.Writer, *qr.Symbol) error{
	"png":   render.PNG,
	"pbm":   render.PBM,
	"svg":   render.SVG,
	"utf8":  render.Text,
	"ascii": render.ASCII,
}

func formats() []string {
	f := make([]string, 0, len(encoders))
	for k := range encoders {
		f = append(f, k)
	}
	sort.Strings(f)
	return f
}

func printUsage(w io.Writer, set *getopt.Set) {
	prog := set.Program()
	ul := make([]string, 1, 4)
	ul[0] = set.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		if n <= 0 {
			break
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:n]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Defaults are read from QRGEN_* environment
variables and a .env file in the current directory.

`)
	var b bytes.Buffer
	set.PrintOptions(&b)
	w.Write(b.Bytes())
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, `qrgen version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
}

// run runs the command with arguments args and environment environ,
// and returns the exit status.  tty tells whether stdout is a
// terminal.
func run(args []string, environ map[string]string, stdin io.Reader,
	stdout, stderr io.Writer, tty bool) int {
	logger := log.NewWithOptions(stderr, log.Options{Prefix: "qrgen"})

	st, err := loadSettings(environ, dotenv)
	if err != nil {
		logger.Error("bad environment", "err", err)
		return exitUsage
	}

	set := getopt.New()
	var helpFlag, versionFlag, debug bool
	set.Flag(&helpFlag, 'h', "show this help")
	set.Flag(&versionFlag, 'V', "print version and copyright")
	set.Flag(&debug, 'd', "log debugging information")
	set.FlagLong(&st.Mode, "mode", 'M', "encoding mode: auto, numeric, "+
		"alphanumeric or octet", "mode")
	set.FlagLong(&st.Level, "level", 'l', "error correction level, "+
		"lowest to highest; auto is m", "auto|l|m|q|h")
	set.FlagLong(&st.Version, "ver", 'v', "QR code version, "+
		"1 to 40; 0 picks the smallest that fits", "ver")
	set.FlagLong(&st.Mask, "mask", 'k', "mask pattern, 0 to 7; "+
		"-1 picks the one with the lowest penalty", "mask")
	set.FlagLong(&st.Charset, "charset", 'c', "octet mode character "+
		"set: utf-8, latin-1 or shift-jis", "charset")
	set.FlagLong(&st.Scale, "scale", 's', "image pixels per QR module; "+
		"ignored for types utf8 and ascii", "scale")
	set.FlagLong(&st.Margin, "margin", 'm', "quiet zone modules", "margin")
	set.FlagLong(&st.Output, "output", 'o', `output file, or "-" for `+
		`standard output`, "file")
	set.FlagLong(&st.Type, "type", 't', "output format, one of: "+
		strings.Join(formats(), ", ")+"; if no -o is given and "+
		"standard output is a TTY, default is utf8, otherwise png",
		"type")

	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err)
		printUsage(stderr, set)
		return exitUsage
	}
	if helpFlag {
		printUsage(stdout, set)
		return exitOK
	}
	if versionFlag {
		printVersion(stdout)
		return exitOK
	}

	level, err := st.logLevel()
	if err != nil {
		logger.Error("bad log level", "err", err)
		return exitUsage
	}
	if debug {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	cfg, err := st.config()
	if err != nil {
		logger.Error("bad settings", "err", err)
		return exitUsage
	}
	if st.Type == "" {
		if st.Output == "" && tty {
			st.Type = "utf8"
		} else {
			st.Type = "png"
		}
	}
	if st.Output == "-" {
		st.Output = ""
	}
	encode, ok := encoders[st.Type]
	if !ok {
		logger.Error("bad settings", "err", fmt.Errorf("%q: unknown output type", st.Type))
		return exitUsage
	}

	var s string
	if a := set.Args(); len(a) != 0 {
		s = strings.Join(a, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, stdin); err != nil {
			logger.Error("read input", "err", err)
			return exitError
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	logger.Debug("input", "bytes", len(s), "mode", cfg.Mode,
		"level", cfg.Level, "version", int(cfg.Version), "mask", cfg.Mask)

	sym, err := qr.Encode(s, cfg)
	if err != nil {
		logger.Error("encode", "err", err)
		return exitError
	}
	logger.Debug("encoded", "version", int(sym.Version), "size", sym.Size,
		"mode", sym.Mode, "level", sym.Level, "mask", sym.Mask)

	if err := write(stdout, st.Output, sym, encode); err != nil {
		logger.Error("write", "err", err)
		return exitError
	}
	return exitOK
}

// write encodes sym to the named file, or to stdout if fn is empty.
func write(stdout io.Writer, fn string, sym *qr.Symbol,
	encode func(io.Writer, *qr.Symbol) error) error {
	if fn == "" {
		return encode(stdout, sym)
	}
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	err = encode(f, sym)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func environ() map[string]string {
	m := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

func main() {
	fd := os.Stdout.Fd()
	os.Exit(run(os.Args, environ(), os.Stdin, os.Stdout, os.Stderr,
		isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)))
}
