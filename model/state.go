package model

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/electr1fy0/jot/notes"
	"github.com/rs/zerolog"
)

type state int

const (
	stateBrowse state = iota
	stateEdit
	stateConfirm
	stateNotice
	statePreview
)

const sidebarWidth = 34

type listItem struct {
	id       int
	title    string
	body     string
	selected bool
}

// editorFinishedMsg carries the body text back from $EDITOR.
type editorFinishedMsg struct {
	content string
	err     error
}

// Options wires a Model to its session and surroundings.
type Options struct {
	Store        *notes.Store
	Logger       *zerolog.Logger // nil discards
	Editor       string
	PreviewStyle string
	PreviewWidth int
	ExportDir    string
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

type Model struct {
	state state
	focus notes.Field

	width  int
	height int

	store *notes.Store
	log   zerolog.Logger

	list       list.Model
	titleInput textinput.Model
	bodyInput  textarea.Model

	confirmMsg string
	confirmID  int

	notice string

	preview     string
	previewBack state

	status    string
	lastError string

	editor       string
	previewStyle string
	previewWidth int
	exportDir    string
	copyText     func(string) error
}
