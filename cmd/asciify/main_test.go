package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for x := 2; x < 4; x += 1 {
		for y := 0; y < 4; y += 1 {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestRunStdout(t *testing.T) {
	in := writePNG(t, t.TempDir())
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	code := run([]string{"-w", "4", "-filter", "nearest", in}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "@@  \n@@  \n@@  \n@@  \n", stdout.String())
}

func TestRunInvert(t *testing.T) {
	in := writePNG(t, t.TempDir())
	stdout := bytes.NewBuffer(nil)
	code := run([]string{"-w", "2", "-filter", "nearest", "-invert", in}, stdout, bytes.NewBuffer(nil))
	require.Equal(t, 0, code)
	assert.Equal(t, " @\n @\n", stdout.String())
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir)
	out := filepath.Join(dir, "art.txt")
	stdout := bytes.NewBuffer(nil)
	code := run([]string{"-o", out, "-w", "4", "-ramp", "fine", in}, stdout, bytes.NewBuffer(nil))
	require.Equal(t, 0, code)
	assert.Empty(t, stdout.String())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(string(b), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, line, 4)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "nathan2.jpg")
	out := filepath.Join(dir, "test.txt")
	stderr := bytes.NewBuffer(nil)
	code := run([]string{"-o", out, in}, bytes.NewBuffer(nil), stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), in)
	_, err := os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunLeavesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))
	out := filepath.Join(dir, "test.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	code := run([]string{"-o", out, bad}, bytes.NewBuffer(nil), bytes.NewBuffer(nil))
	assert.Equal(t, 1, code)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(b))
}

func TestRunInvalidConfiguration(t *testing.T) {
	in := writePNG(t, t.TempDir())
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "zero width", args: []string{"-w", "0", in}, code: 1},
		{name: "negative width", args: []string{"-w", "-5", in}, code: 1},
		{name: "unknown ramp", args: []string{"-ramp", "medium", in}, code: 1},
		{name: "unknown filter", args: []string{"-filter", "box", in}, code: 1},
		{name: "no input", args: []string{}, code: 2},
		{name: "two inputs", args: []string{in, in}, code: 2},
		{name: "unknown flag", args: []string{"-x", in}, code: 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout := bytes.NewBuffer(nil)
			stderr := bytes.NewBuffer(nil)
			assert.Equal(t, test.code, run(test.args, stdout, stderr))
			assert.Empty(t, stdout.String())
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, writeFile(path, []byte("one")))
	require.NoError(t, writeFile(path, []byte("two")))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))

	err = writeFile(filepath.Join(dir, "missing", "out.txt"), []byte("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
