package notes

import "fmt"

type IntentKind string

const (
	IntentPick   IntentKind = "pick"
	IntentNew    IntentKind = "new"
	IntentEdit   IntentKind = "edit"
	IntentCommit IntentKind = "commit"
	IntentRemove IntentKind = "remove"
)

// Intent is what a presentation layer asks of the store.
type Intent struct {
	Kind      IntentKind `json:"intent"`
	NoteID    int        `json:"id,omitempty"`
	Field     Field      `json:"field,omitempty"`
	Text      string     `json:"text,omitempty"`
	Confirmed bool       `json:"confirmed,omitempty"`
}

// Apply runs the operation behind in. Removal only happens once the
// operator has confirmed it.
func (s *Store) Apply(in Intent) error {
	switch in.Kind {
	case IntentPick:
		s.Select(in.NoteID)
	case IntentNew:
		s.BeginCreate()
	case IntentEdit:
		if !in.Field.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownField, in.Field)
		}
		s.UpdateForm(in.Field, in.Text)
	case IntentCommit:
		return s.Save()
	case IntentRemove:
		if !in.Confirmed {
			s.log.Debug().Int("id", in.NoteID).Msg("remove not confirmed")
			return nil
		}
		s.Delete(in.NoteID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntent, in.Kind)
	}
	return nil
}
