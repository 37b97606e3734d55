package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEditor(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-editor")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755))
	return path
}

func TestResolveEditor(t *testing.T) {
	assert.Equal(t, "nano", ResolveEditor("nano"))

	t.Setenv("EDITOR", "emacs")
	assert.Equal(t, "emacs", ResolveEditor(""))
}

func TestEditSession_RoundTrip(t *testing.T) {
	ed := fakeEditor(t, `printf ' edited' >> "$1"`)

	s, err := NewEditSession(ed, "original")
	require.NoError(t, err)
	require.NoError(t, s.Cmd().Run())

	out, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "original edited", out)

	_, err = os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))
}

func TestEditSession_EditorArgs(t *testing.T) {
	ed := fakeEditor(t, `printf '%s' "$1" > "$2"`)

	s, err := NewEditSession(ed+" --wait", "")
	require.NoError(t, err)
	require.NoError(t, s.Cmd().Run())

	out, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "--wait", out)
}

func TestEditSession_NoEditor(t *testing.T) {
	_, err := NewEditSession("  ", "x")
	assert.Error(t, err)
}
