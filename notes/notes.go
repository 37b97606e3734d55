// Package notes holds the in-memory note collection and the editing
// session state that the presentation layers drive.
package notes

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

type Note struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Form is the working copy being edited. It only reaches a Note on Save.
type Form struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Field string

const (
	FieldTitle Field = "title"
	FieldBody  Field = "body"
)

func (f Field) Valid() bool {
	return f == FieldTitle || f == FieldBody
}

// Store is one editing session. It is not safe for concurrent use; the
// owner serialises calls.
type Store struct {
	notes  []Note
	sel    Selection
	form   Form
	nextID int

	log zerolog.Logger
}

type options struct {
	seed   *Form
	logger zerolog.Logger
}

type Option func(*options)

// WithSeed creates an initial note and selects it.
func WithSeed(title, body string) Option {
	return func(o *options) {
		o.seed = &Form{Title: title, Body: body}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func NewStore(opts ...Option) *Store {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store{
		nextID: 1,
		log:    o.logger,
	}
	if o.seed != nil {
		s.BeginCreate()
		s.form = *o.seed
		if err := s.Save(); err != nil {
			s.log.Warn().Err(err).Msg("seed note rejected")
			s.sel = NoSelection()
			s.form = Form{}
		}
	}
	return s
}

// Select loads the note with id into the form. Unknown ids are ignored.
func (s *Store) Select(id int) {
	i := s.index(id)
	if i < 0 {
		s.log.Debug().Int("id", id).Msg("select: no such note")
		return
	}
	n := s.notes[i]
	s.sel = Editing(id)
	s.form = Form{Title: n.Title, Body: n.Body}
	s.log.Debug().Int("id", id).Msg("selected note")
}

func (s *Store) BeginCreate() {
	s.sel = Creating()
	s.form = Form{}
	s.log.Debug().Msg("creating note")
}

func (s *Store) UpdateForm(field Field, value string) {
	switch field {
	case FieldTitle:
		s.form.Title = value
	case FieldBody:
		s.form.Body = value
	}
}

// Save commits the form. A blank title fails with a *ValidationError and
// leaves everything untouched.
func (s *Store) Save() error {
	title := strings.TrimSpace(s.form.Title)
	if title == "" {
		return titleRequired()
	}
	body := strings.TrimSpace(s.form.Body)

	switch s.sel.mode {
	case ModeCreating:
		n := Note{ID: s.nextID, Title: title, Body: body}
		s.nextID++
		s.notes = slices.Insert(s.notes, 0, n)
		s.sel = Editing(n.ID)
		s.form = Form{Title: title, Body: body}
		s.log.Debug().Int("id", n.ID).Str("title", title).Msg("created note")
	case ModeEditing:
		i := s.index(s.sel.id)
		if i < 0 {
			return nil
		}
		s.notes[i].Title = title
		s.notes[i].Body = body
		s.form = Form{Title: title, Body: body}
		s.log.Debug().Int("id", s.sel.id).Str("title", title).Msg("updated note")
	}
	return nil
}

// Delete removes the note with id and repairs the selection if it pointed
// at it. Unknown ids are ignored.
func (s *Store) Delete(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	s.log.Debug().Int("id", id).Msg("deleted note")

	if !s.sel.Is(id) {
		return
	}
	if len(s.notes) > 0 {
		s.Select(s.notes[0].ID)
		return
	}
	s.BeginCreate()
}

func (s *Store) Notes() []Note {
	return slices.Clone(s.notes)
}

func (s *Store) Len() int {
	return len(s.notes)
}

func (s *Store) Note(id int) (Note, bool) {
	i := s.index(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

func (s *Store) Selection() Selection {
	return s.sel
}

func (s *Store) Form() Form {
	return s.form
}

func (s *Store) IsCreating() bool {
	return s.sel.mode == ModeCreating
}

// ActiveNote is the stored note behind the current selection.
func (s *Store) ActiveNote() (Note, bool) {
	id, ok := s.sel.ID()
	if !ok {
		return Note{}, false
	}
	return s.Note(id)
}

// SubmitLabel is the caption for the commit action in the current mode.
func (s *Store) SubmitLabel() string {
	if s.IsCreating() {
		return "Create Note"
	}
	return "Save Changes"
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

// DisplayTitle is how a note is named in lists.
func DisplayTitle(n Note) string {
	if n.Title == "" {
		return "(Untitled)"
	}
	return n.Title
}
