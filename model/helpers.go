package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/list"
	"github.com/electr1fy0/jot/notes"
	"github.com/mattn/go-runewidth"
)

func (i listItem) FilterValue() string { return i.title }

func (i listItem) Title() string {
	title := runewidth.Truncate(notes.DisplayTitle(notes.Note{Title: i.title}), sidebarWidth-8, "…")
	if i.selected {
		return "● " + title
	}
	return title
}

func (i listItem) Description() string {
	line, _, _ := strings.Cut(i.body, "\n")
	if line == "" {
		return "empty"
	}
	return runewidth.Truncate(line, sidebarWidth-6, "…")
}

// refreshList rebuilds the sidebar from the store and puts the cursor on
// the selected note.
func (m *Model) refreshList() {
	ns := m.store.Notes()
	items := make([]list.Item, 0, len(ns))
	cursor := -1
	for i, n := range ns {
		sel := m.store.Selection().Is(n.ID)
		if sel {
			cursor = i
		}
		items = append(items, listItem{
			id:       n.ID,
			title:    n.Title,
			body:     n.Body,
			selected: sel,
		})
	}
	m.list.SetItems(items)
	if cursor >= 0 {
		m.list.Select(cursor)
	}
}

// loadForm copies the store's working copy into the inputs.
func (m *Model) loadForm() {
	f := m.store.Form()
	m.titleInput.SetValue(f.Title)
	m.bodyInput.SetValue(f.Body)
}

func (m *Model) highlighted() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.lastError = ""
}

func (m *Model) setError(prefix string, err error) {
	m.status = prefix + ": " + err.Error()
	m.lastError = err.Error()
	m.log.Error().Err(err).Msg(prefix)
}

func (m *Model) copyBody() {
	it, ok := m.highlighted()
	if !ok {
		return
	}
	if err := m.copyText(it.body); err != nil {
		m.setError("Copy failed", err)
		return
	}
	m.setStatus("Copied body of " + notes.DisplayTitle(notes.Note{Title: it.title}))
}

func (m *Model) exportNotes() error {
	exportDir := filepath.Join(m.exportDir, fmt.Sprintf("jot_export_%d", time.Now().Unix()))
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return err
	}

	ns := m.store.Notes()
	for _, n := range ns {
		filename := fmt.Sprintf("%03d-%s.md", n.ID, slug(n.Title))
		content := "# " + n.Title + "\n\n" + n.Body + "\n"
		if err := os.WriteFile(filepath.Join(exportDir, filename), []byte(content), 0644); err != nil {
			return err
		}
	}

	m.setStatus(fmt.Sprintf("Exported %d notes to %s/", len(ns), exportDir))
	return nil
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "note"
	}
	return s
}
