package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recera/codebuilder/cmd/codebuilder/internal/config"
	"github.com/recera/codebuilder/internal/editor"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExport_DefaultSampleToFile(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "-C", dir, "export", "--lang", "python", "--out", dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "code.py")
	assert.Equal(t, path, strings.TrimSpace(out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, editor.Sample(editor.Python), string(data))
}

func TestExport_StdinToStdout(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "let x = 1;\n", "-C", dir, "export", "--lang", "ts", "--in", "-", "--stdout")
	require.Error(t, err, "ts is not a language key")
	assert.ErrorIs(t, err, editor.ErrUnknownLanguage)
	assert.Empty(t, out)

	out, err = run(t, "let x = 1;\n", "-C", dir, "export", "--lang", "typescript", "--in", "-", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "--stdout must not touch the filesystem")
}

func TestExport_InputFileAndConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codebuilder.json"),
		[]byte(`{"export": {"dir": "out", "defaultLanguage": "python"}}`), 0644))
	src := filepath.Join(dir, "snippet.txt")
	require.NoError(t, os.WriteFile(src, []byte("print('hi')"), 0644))

	out, err := run(t, "", "-C", dir, "export", "--in", src)
	require.NoError(t, err)

	path := filepath.Join(dir, "out", "code.py")
	assert.Equal(t, path, strings.TrimSpace(out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", string(data))
}

func TestBuild_WritesIndex(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "site")

	out, err := run(t, "", "-C", dir, "build", "--out", outDir)
	require.NoError(t, err)

	path := filepath.Join(outDir, "index.html")
	assert.Equal(t, path, strings.TrimSpace(out))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n"))
	assert.Contains(t, page, `id="code-input"`)
	assert.Contains(t, page, "fibonacci(10)")
}

func TestBuild_BadContentFile(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "", "-C", dir, "build", "--content", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestSamples(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "-C", dir, "samples", "--lang", "javascript")
	require.NoError(t, err)
	assert.Contains(t, out, "# JavaScript (code.js) lines=6 chars=")
	assert.Contains(t, out, editor.Sample(editor.JavaScript))
	assert.NotContains(t, out, "quicksort")

	out, err = run(t, "", "-C", dir, "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "code.js")
	assert.Contains(t, out, "code.py")
	assert.Contains(t, out, "code.ts")
}

func TestSamples_Color(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "-C", dir, "samples", "--lang", "python", "--color")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "quicksort")
	assert.NotContains(t, out, editor.Sample(editor.Python))
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "", "-C", dir, "init", "--lang", "python")
	require.NoError(t, err)
	path := filepath.Join(dir, "codebuilder.json")
	assert.Equal(t, path, strings.TrimSpace(out))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, editor.Python, cfg.Export.DefaultLanguage)
	assert.Equal(t, 5173, cfg.Dev.Port)

	// The written default language drives later commands
	out, err = run(t, "", "-C", dir, "export", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, editor.Sample(editor.Python), out)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codebuilder.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug": true}`), 0644))

	_, err := run(t, "", "-C", dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"debug": true}`, string(data))

	_, err = run(t, "", "-C", dir, "init", "--force")
	require.NoError(t, err)
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codebuilder.json"),
		[]byte(`{"dev": {"port": 70000}}`), 0644))

	_, err := run(t, "", "-C", dir, "samples")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
