package notes

type SelectionView struct {
	Mode string `json:"mode"`
	ID   int    `json:"id,omitempty"`
}

// Snapshot is a copy of the session for rendering elsewhere.
type Snapshot struct {
	Notes       []Note        `json:"notes"`
	Selection   SelectionView `json:"selection"`
	Form        Form          `json:"form"`
	SubmitLabel string        `json:"submit_label"`
}

func (s *Store) Snapshot() Snapshot {
	notes := s.Notes()
	if notes == nil {
		notes = []Note{}
	}
	id, _ := s.sel.ID()
	return Snapshot{
		Notes:       notes,
		Selection:   SelectionView{Mode: s.sel.mode.String(), ID: id},
		Form:        s.form,
		SubmitLabel: s.SubmitLabel(),
	}
}
