package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	qr "github.com/AnemonOFF/qrgen"
)

type result struct {
	code           int
	stdout, stderr string
}

func runWith(t *testing.T, env map[string]string, stdin string, tty bool, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(append([]string{"qrgen"}, args...), env,
		strings.NewReader(stdin), &out, &errb, tty)
	return result{code, out.String(), errb.String()}
}

func init() {
	dotenv = ""
}

func TestRunASCII(t *testing.T) {
	require := require.New(t)

	r := runWith(t, nil, "HELLO WORLD\n", false, "-t", "ascii", "-m", "0")
	require.Equal(exitOK, r.code, r.stderr)
	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	require.Len(lines, 21)
	for _, l := range lines {
		require.Len(l, 42)
	}

	args := runWith(t, nil, "", false, "-t", "ascii", "-m", "0", "HELLO", "WORLD")
	require.Equal(r, args)
	crlf := runWith(t, nil, "HELLO WORLD\r\n", false, "-t", "ascii", "-m", "0")
	require.Equal(r, crlf)
}

func TestRunDefaultType(t *testing.T) {
	require := require.New(t)

	r := runWith(t, nil, "", true, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Contains(r.stdout, "█")

	r = runWith(t, nil, "", false, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.True(strings.HasPrefix(r.stdout, "\x89PNG\r\n\x1a\n"))

	r = runWith(t, nil, "", true, "-o", "-", "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.True(strings.HasPrefix(r.stdout, "\x89PNG\r\n\x1a\n"))
}

func TestRunOutputFile(t *testing.T) {
	require := require.New(t)

	fn := filepath.Join(t.TempDir(), "code.pbm")
	r := runWith(t, nil, "", true, "-t", "pbm", "-s", "1", "-m", "0", "-o", fn, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Empty(r.stdout)
	b, err := os.ReadFile(fn)
	require.NoError(err)
	require.True(bytes.HasPrefix(b, []byte("P4\n21 21\n")))
	require.Len(b, len("P4\n21 21\n")+21*3)

	r = runWith(t, nil, "", false, "-o", filepath.Join(fn, "nope"), "hello")
	require.Equal(exitError, r.code)
}

func TestRunEnvironment(t *testing.T) {
	require := require.New(t)

	env := map[string]string{"QRGEN_TYPE": "svg", "QRGEN_SCALE": "2", "QRGEN_MARGIN": "1"}
	r := runWith(t, env, "", false, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Contains(r.stdout, `width="46" height="46"`)

	r = runWith(t, env, "", false, "-t", "ascii", "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Len(strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n"), 23)

	r = runWith(t, map[string]string{"QRGEN_SCALE": "big"}, "", false, "hello")
	require.Equal(exitUsage, r.code)
}

func TestRunDotenv(t *testing.T) {
	require := require.New(t)

	fn := filepath.Join(t.TempDir(), ".env")
	require.NoError(os.WriteFile(fn, []byte("QRGEN_TYPE=ascii\nQRGEN_MARGIN=0\n"), 0666))
	dotenv = fn
	defer func() { dotenv = "" }()

	r := runWith(t, nil, "", false, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Len(strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n"), 21)

	r = runWith(t, map[string]string{"QRGEN_MARGIN": "1"}, "", false, "hello")
	require.Equal(exitOK, r.code, r.stderr)
	require.Len(strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n"), 23)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"mismatch", []string{"-M", "numeric", "12a"}, exitError, "position 2"},
		{"too small", []string{"-v", "1", "-l", "h", "HELLO WORLD"}, exitError, "do not fit version 1-H"},
		{"level", []string{"-l", "x", "1"}, exitUsage, "unknown level"},
		{"mode", []string{"-M", "kanji", "1"}, exitUsage, "unknown mode"},
		{"charset", []string{"-c", "koi8-r", "1"}, exitUsage, "unknown charset"},
		{"type", []string{"-t", "gif", "1"}, exitUsage, "unknown output type"},
		{"mask", []string{"-k", "8", "1"}, exitUsage, "invalid mask"},
		{"flag", []string{"-Z", "1"}, exitUsage, "Usage: qrgen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runWith(t, nil, "", false, append([]string{"-t", "ascii"}, tt.args...)...)
			require.Equal(t, tt.code, r.code)
			require.Contains(t, r.stderr, tt.msg)
			require.Empty(t, r.stdout)
		})
	}
}

func TestRunHelpVersion(t *testing.T) {
	require := require.New(t)

	r := runWith(t, nil, "", false, "-h")
	require.Equal(exitOK, r.code)
	require.True(strings.HasPrefix(r.stdout, "QR code generator\nUsage: qrgen "))
	require.Contains(r.stdout, "--level")

	r = runWith(t, nil, "", false, "-V")
	require.Equal(exitOK, r.code)
	require.True(strings.HasPrefix(r.stdout, "qrgen version "))
}

func TestRunDebug(t *testing.T) {
	require := require.New(t)

	r := runWith(t, nil, "", false, "-d", "-t", "ascii", "HELLO WORLD")
	require.Equal(exitOK, r.code)
	require.Contains(r.stderr, "encoded")
	require.Contains(r.stderr, "version=1")

	r = runWith(t, nil, "", false, "-t", "ascii", "HELLO WORLD")
	require.Empty(r.stderr)

	r = runWith(t, map[string]string{"QRGEN_LOG_LEVEL": "debug"}, "", false, "-t", "ascii", "1")
	require.Contains(r.stderr, "encoded")
}

func TestSettingsConfig(t *testing.T) {
	require := require.New(t)

	st, err := loadSettings(nil, "")
	require.NoError(err)
	cfg, err := st.config()
	require.NoError(err)
	require.Equal(qr.DefaultConfig(), cfg)

	st, err = loadSettings(map[string]string{
		"QRGEN_MODE":    "Byte",
		"QRGEN_LEVEL":   "Q",
		"QRGEN_CHARSET": "sjis",
		"QRGEN_VERSION": "7",
		"QRGEN_MASK":    "3",
	}, filepath.Join(t.TempDir(), "missing"))
	require.NoError(err)
	cfg, err = st.config()
	require.NoError(err)
	require.Equal(qr.Octet, cfg.Mode)
	require.Equal(qr.Q, cfg.Level)
	require.Equal(qr.ShiftJIS, cfg.Charset)
	require.Equal(qr.Version(7), cfg.Version)
	require.Equal(qr.Mask(3), cfg.Mask)
}
