package notes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_CreateFlow(t *testing.T) {
	s := newSeeded()

	require.NoError(t, s.Apply(Intent{Kind: IntentNew}))
	require.NoError(t, s.Apply(Intent{Kind: IntentEdit, Field: FieldTitle, Text: "Groceries"}))
	require.NoError(t, s.Apply(Intent{Kind: IntentEdit, Field: FieldBody, Text: "Milk"}))
	require.NoError(t, s.Apply(Intent{Kind: IntentCommit}))

	n, ok := s.ActiveNote()
	require.True(t, ok)
	assert.Equal(t, Note{ID: 2, Title: "Groceries", Body: "Milk"}, n)

	require.NoError(t, s.Apply(Intent{Kind: IntentPick, NoteID: 1}))
	assert.Equal(t, Editing(1), s.Selection())
}

func TestApply_CommitValidation(t *testing.T) {
	s := newSeeded()
	require.NoError(t, s.Apply(Intent{Kind: IntentNew}))

	err := s.Apply(Intent{Kind: IntentCommit})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, s.Len())
}

func TestApply_RemoveNeedsConfirmation(t *testing.T) {
	s := newSeeded()

	require.NoError(t, s.Apply(Intent{Kind: IntentRemove, NoteID: 1}))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Apply(Intent{Kind: IntentRemove, NoteID: 1, Confirmed: true}))
	assert.Zero(t, s.Len())
	assert.True(t, s.IsCreating())
}

func TestApply_Unknown(t *testing.T) {
	s := newSeeded()

	assert.ErrorIs(t, s.Apply(Intent{Kind: "rename"}), ErrUnknownIntent)
	assert.ErrorIs(t, s.Apply(Intent{Kind: IntentEdit, Field: "color", Text: "x"}), ErrUnknownField)
	assert.Equal(t, Form{Title: seedTitle, Body: seedBody}, s.Form())
}

func TestIntent_JSON(t *testing.T) {
	var in Intent
	require.NoError(t, json.Unmarshal([]byte(`{"intent":"remove","id":3,"confirmed":true}`), &in))
	assert.Equal(t, Intent{Kind: IntentRemove, NoteID: 3, Confirmed: true}, in)
}

func TestSnapshot(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	assert.NotNil(t, snap.Notes)
	assert.Equal(t, "none", snap.Selection.Mode)

	s = newSeeded()
	s.UpdateForm(FieldBody, "draft")
	snap = s.Snapshot()
	assert.Equal(t, []Note{{ID: 1, Title: seedTitle, Body: seedBody}}, snap.Notes)
	assert.Equal(t, SelectionView{Mode: "editing", ID: 1}, snap.Selection)
	assert.Equal(t, "draft", snap.Form.Body)
	assert.Equal(t, "Save Changes", snap.SubmitLabel)

	data, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"notes":[{"id":1,"title":"Example Note","body":"Welcome to Notes! Select or create a note to begin editing."}],
		"selection":{"mode":"editing","id":1},
		"form":{"title":"Example Note","body":"draft"},
		"submit_label":"Save Changes"
	}`, string(data))
}
