package model

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/electr1fy0/jot/notes"
	"github.com/electr1fy0/jot/utils"
	"github.com/rs/zerolog"
)

func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 0
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = "Start typing your note here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(12)

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), sidebarWidth, 20)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	// d deletes, it must not also page the list
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown", "f")

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	store := opts.Store
	if store == nil {
		store = notes.NewStore()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	m := Model{
		state:        stateBrowse,
		focus:        notes.FieldTitle,
		store:        store,
		log:          log,
		list:         l,
		titleInput:   ti,
		bodyInput:    ta,
		editor:       opts.Editor,
		previewStyle: opts.PreviewStyle,
		previewWidth: opts.PreviewWidth,
		exportDir:    opts.ExportDir,
		copyText:     copyText,
	}
	m.refreshList()
	m.loadForm()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// dispatch hands an intent to the store. All session changes go through here.
func (m *Model) dispatch(in notes.Intent) error {
	err := m.store.Apply(in)
	m.log.Debug().
		Str("intent", string(in.Kind)).
		Int("id", in.NoteID).
		Stringer("selection", m.store.Selection()).
		AnErr("err", err).
		Msg("dispatch")
	return err
}

// focusField moves keyboard focus into the form.
func (m *Model) focusField(f notes.Field) tea.Cmd {
	m.state = stateEdit
	m.focus = f
	if f == notes.FieldBody {
		m.titleInput.Blur()
		return m.bodyInput.Focus()
	}
	m.bodyInput.Blur()
	return m.titleInput.Focus()
}

func (m *Model) blurForm() {
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.state = stateBrowse
}

func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.list.SetSize(sidebarWidth, max(m.height-8, 4))
	formWidth := max(m.width-sidebarWidth-10, 20)
	m.titleInput.Width = formWidth - 2
	m.bodyInput.SetWidth(formWidth)
	m.bodyInput.SetHeight(max(m.height-14, 3))
}

func (m *Model) save() {
	err := m.dispatch(notes.Intent{Kind: notes.IntentCommit})
	var verr *notes.ValidationError
	if errors.As(err, &verr) {
		m.lastError = verr.Error()
		m.notice = fmt.Sprintf("Cannot save: %s. Please enter a note title.", verr.Message)
		m.titleInput.Blur()
		m.bodyInput.Blur()
		m.state = stateNotice
		return
	}
	if err != nil {
		m.setError("Save failed", err)
		return
	}

	m.refreshList()
	m.loadForm()
	if n, ok := m.store.ActiveNote(); ok {
		m.setStatus("Saved: " + n.Title)
	} else {
		m.setStatus("Nothing to save")
	}
}

func (m *Model) beginCreate() tea.Cmd {
	_ = m.dispatch(notes.Intent{Kind: notes.IntentNew})
	m.refreshList()
	m.loadForm()
	m.setStatus("New note")
	return m.focusField(notes.FieldTitle)
}

func (m *Model) openPreview() {
	width := m.previewWidth
	if width == 0 {
		width = m.width
	}
	m.preview = renderPreview(m.store.Form().Body, width, m.previewStyle)
	m.previewBack = m.state
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.state = statePreview
}

func (m *Model) openEditor() tea.Cmd {
	session, err := utils.NewEditSession(utils.ResolveEditor(m.editor), m.store.Form().Body)
	if err != nil {
		m.setError("Editor failed", err)
		return nil
	}
	return tea.ExecProcess(session.Cmd(), func(err error) tea.Msg {
		if err != nil {
			_, _ = session.Result()
			return editorFinishedMsg{err: err}
		}
		out, err := session.Result()
		return editorFinishedMsg{content: out, err: err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.setError("Editor failed", msg.err)
			return m, tea.ClearScreen
		}
		_ = m.dispatch(notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldBody, Text: msg.content})
		m.bodyInput.SetValue(msg.content)
		m.setStatus("Body updated from editor (unsaved)")
		return m, tea.ClearScreen
	}

	switch m.state {
	case stateNotice:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.notice = ""
			return m, m.focusField(notes.FieldTitle)
		}
		return m, nil

	case stateConfirm:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				title := "note"
				if n, ok := m.store.Note(m.confirmID); ok {
					title = notes.DisplayTitle(n)
				}
				_ = m.dispatch(notes.Intent{Kind: notes.IntentRemove, NoteID: m.confirmID, Confirmed: true})
				m.refreshList()
				m.loadForm()
				m.setStatus("Deleted: " + title)
				m.state = stateBrowse
			case "n", "N", "esc":
				m.setStatus("Delete cancelled")
				m.state = stateBrowse
			}
		}
		return m, nil

	case statePreview:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "q", "p", "ctrl+p", "enter":
				m.preview = ""
				if m.previewBack == stateEdit {
					return m, m.focusField(m.focus)
				}
				m.state = stateBrowse
			}
		}
		return m, nil

	case stateBrowse:
		// app keys act on the highlighted note before the list can move it
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter":
				if it, ok := m.highlighted(); ok {
					_ = m.dispatch(notes.Intent{Kind: notes.IntentPick, NoteID: it.id})
					m.refreshList()
					m.loadForm()
					m.setStatus("Editing: " + notes.DisplayTitle(notes.Note{Title: it.title}))
					return m, m.focusField(notes.FieldTitle)
				}
				return m, nil
			case "n":
				return m, m.beginCreate()
			case "d":
				if it, ok := m.highlighted(); ok {
					m.confirmID = it.id
					m.confirmMsg = fmt.Sprintf("Delete note '%s'? This cannot be undone. (y/N)", notes.DisplayTitle(notes.Note{Title: it.title}))
					m.state = stateConfirm
				}
				return m, nil
			case "tab":
				return m, m.focusField(m.focus)
			case "p":
				m.openPreview()
				return m, nil
			case "y":
				m.copyBody()
				return m, nil
			case "x":
				if err := m.exportNotes(); err != nil {
					m.setError("Export failed", err)
				}
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case stateEdit:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.blurForm()
				return m, nil
			case "tab", "shift+tab":
				if m.focus == notes.FieldTitle {
					return m, m.focusField(notes.FieldBody)
				}
				return m, m.focusField(notes.FieldTitle)
			case "ctrl+s":
				m.save()
				return m, nil
			case "ctrl+n":
				return m, m.beginCreate()
			case "ctrl+e":
				return m, m.openEditor()
			case "ctrl+p":
				m.openPreview()
				return m, nil
			}
		}

		var cmd tea.Cmd
		form := m.store.Form()
		if m.focus == notes.FieldTitle {
			m.titleInput, cmd = m.titleInput.Update(msg)
			if v := m.titleInput.Value(); v != form.Title {
				_ = m.dispatch(notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldTitle, Text: v})
			}
		} else {
			m.bodyInput, cmd = m.bodyInput.Update(msg)
			if v := m.bodyInput.Value(); v != form.Body {
				_ = m.dispatch(notes.Intent{Kind: notes.IntentEdit, Field: notes.FieldBody, Text: v})
			}
		}
		return m, cmd
	}

	return m, nil
}
