package utils

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor picks the editor command: the configured one, then
// $EDITOR, then nvim or vi on PATH.
func ResolveEditor(configured string) string {
	if configured != "" {
		return configured
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if p, err := exec.LookPath("nvim"); err == nil {
		return p
	}
	if p, err := exec.LookPath("vi"); err == nil {
		return p
	}
	return "ed"
}

// EditSession is one round trip of text through an external editor.
type EditSession struct {
	path string
	cmd  *exec.Cmd
}

// NewEditSession writes initial to a temp file and prepares the editor
// command on it. The caller runs Cmd, then reads Result.
func NewEditSession(editor, initial string) (*EditSession, error) {
	tmp, err := os.CreateTemp("", "jot-note-*.md")
	if err != nil {
		return nil, err
	}
	name := tmp.Name()

	if _, err := tmp.WriteString(initial); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return nil, err
	}

	// editors like "code --wait" carry their own args
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		_ = os.Remove(name)
		return nil, fmt.Errorf("no editor configured")
	}
	args := append(parts[1:], name)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &EditSession{path: name, cmd: cmd}, nil
}

func (s *EditSession) Cmd() *exec.Cmd {
	return s.cmd
}

// Result reads the edited text and removes the temp file.
func (s *EditSession) Result() (string, error) {
	defer func() { _ = os.Remove(s.path) }()
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
