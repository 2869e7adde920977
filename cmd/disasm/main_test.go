package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	lines := internal.DisassembleROM([]byte{0x00, 0xE0, 0x12, 0x00, 0xAB})
	assert.NoError(t, write(&buf, lines))
	assert.Equal(t, "200  00E0  cls\n202  1200  jp $200\n204  00AB  db $AB\n", buf.String())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	rom := filepath.Join(dir, "test.ch8")
	out := filepath.Join(dir, "test.asm")
	assert.NoError(t, os.WriteFile(rom, []byte{0x60, 0x05}, 0o644))

	assert.NoError(t, run(options{ROM: rom, Output: out}, log.NewTestLogger(t)))
	data, err := os.ReadFile(out)
	assert.NoError(t, err)
	assert.Equal(t, "200  6005  ld V0, $05\n", string(data))

	assert.Error(t, run(options{ROM: filepath.Join(dir, "missing.ch8")}, log.NewTestLogger(t)))
}
