package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/electr1fy0/jot/notes"
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("jot - notes"))
	s.WriteString("\n\n")

	switch m.state {
	case stateConfirm:
		s.WriteString(warningStyle.Render(m.confirmMsg))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("y: confirm  n/esc: cancel"))
		return s.String()

	case stateNotice:
		s.WriteString(errorStyle.Render(m.notice))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("press any key to continue"))
		return s.String()

	case statePreview:
		s.WriteString(titleStyle.Render(notes.DisplayTitle(notes.Note{Title: m.store.Form().Title})))
		s.WriteString("\n\n")
		s.WriteString(m.preview)
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("esc: back"))
		return s.String()
	}

	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", m.editorView()))
	s.WriteString("\n")

	var help []string
	if m.state == stateBrowse {
		help = []string{"enter:edit", "n:new", "d:delete", "tab:form", "p:preview", "y:copy", "x:export", "q:quit"}
	} else {
		help = []string{"ctrl+s:" + strings.ToLower(m.store.SubmitLabel()), "tab:switch field", "ctrl+n:new", "ctrl+e:$EDITOR", "ctrl+p:preview", "esc:list"}
	}
	s.WriteString(helpStyle.Render(strings.Join(help, "  ")))

	if m.status != "" {
		s.WriteString("\n")
		if m.lastError != "" {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return s.String()
}

func (m Model) sidebarView() string {
	style := paneStyle
	if m.state == stateBrowse {
		style = focusedPaneStyle
	}
	if m.store.Len() == 0 {
		return style.Width(sidebarWidth).Render(labelStyle.Render("Notes") + "\n\n" + helpStyle.Render("No notes yet"))
	}
	return style.Render(m.list.View())
}

func (m Model) editorView() string {
	style := paneStyle
	if m.state == stateEdit {
		style = focusedPaneStyle
	}

	var heading string
	switch {
	case m.store.IsCreating():
		heading = "New note"
	case m.store.Selection().Mode() == notes.ModeEditing:
		heading = "Edit note"
	default:
		heading = "No note selected"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Body"))
	b.WriteString("\n")
	b.WriteString(m.bodyInput.View())
	b.WriteString("\n\n")
	b.WriteString(warningStyle.Render("[ " + m.store.SubmitLabel() + " ]"))
	return style.Render(b.String())
}
