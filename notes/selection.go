package notes

import "fmt"

type Mode int

const (
	ModeNone Mode = iota
	ModeEditing
	ModeCreating
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeCreating:
		return "creating"
	default:
		return "none"
	}
}

// Selection is the current editing target: an existing note, a pending new
// note, or nothing. The id is only meaningful in ModeEditing.
type Selection struct {
	mode Mode
	id   int
}

func Editing(id int) Selection { return Selection{mode: ModeEditing, id: id} }
func Creating() Selection      { return Selection{mode: ModeCreating} }
func NoSelection() Selection   { return Selection{} }

func (s Selection) Mode() Mode { return s.mode }

func (s Selection) ID() (int, bool) {
	if s.mode != ModeEditing {
		return 0, false
	}
	return s.id, true
}

// Is reports whether the selection targets the note with id.
func (s Selection) Is(id int) bool {
	cur, ok := s.ID()
	return ok && cur == id
}

func (s Selection) String() string {
	if s.mode == ModeEditing {
		return fmt.Sprintf("editing(%d)", s.id)
	}
	return s.mode.String()
}
