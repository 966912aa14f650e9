// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// quietConfig silences the production logger and turns TeX off so images
// render with the plain text handler.
func quietConfig(t *testing.T, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nbkit.yaml")
	doc := "log:\n  level: error\nstyle:\n  use_tex: false\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

// execute runs the command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger = zap.NewNop() })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", quietConfig(t, "")}, args...))
	err := root.Execute()

	return out.String(), err
}

// readCSV splits CSV text into trimmed lines of fields.
func readCSV(t *testing.T, text string) [][]string {
	t.Helper()
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		rows = append(rows, strings.Split(line, ","))
	}

	return rows
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return readCSV(t, string(raw))
}

func parse(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)

	return v
}

func TestRoot_BadConfig(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"density", "--mean", "0", "--cov", "1", "--range", "0:1:2"})
	require.ErrorIs(t, root.Execute(), os.ErrNotExist)
}
