// Package editsession models the owner-preview inline editor: per-field
// edit-mode toggling over the registry's title, subtitle and description.
// At most one field is in edit mode at a time; commits flow through a
// FieldUpdater collaborator, cancels never do. The whole machine is inert
// outside preview mode.
package editsession

import (
	"errors"

	"registry.link/models"
)

var (
	ErrNotPreviewing  = errors.New("inline editing is only available in preview mode")
	ErrUnknownField   = errors.New("unknown editable field")
	ErrAlreadyEditing = errors.New("another field is already being edited")
	ErrNotEditing     = errors.New("no field is being edited")
)

// ParseField validates a wire-level field name.
func ParseField(name string) (models.EditableField, error) {
	for _, f := range models.EditableFields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// FieldUpdater receives committed field values. Implementations forward them
// to the registry update boundary.
type FieldUpdater interface {
	UpdateField(field models.EditableField, value string) error
}

// Session is the per-view editing state machine. The zero field value means
// Viewing; a non-empty editing field means Editing(field).
type Session struct {
	preview bool
	updater FieldUpdater
	values  map[models.EditableField]string
	editing models.EditableField
	buffer  string
}

// New builds a session over the given field values. Values may be nil; unset
// fields read as empty strings.
func New(preview bool, values map[models.EditableField]string, updater FieldUpdater) *Session {
	copied := make(map[models.EditableField]string, len(values))
	for f, v := range values {
		copied[f] = v
	}
	return &Session{preview: preview, updater: updater, values: copied}
}

// Value returns the field's current (last committed) value.
func (s *Session) Value(f models.EditableField) string {
	return s.values[f]
}

// Editing reports which field is in edit mode, if any.
func (s *Session) Editing() (models.EditableField, bool) {
	return s.editing, s.editing != ""
}

// Buffer returns the in-progress edit text.
func (s *Session) Buffer() string {
	return s.buffer
}

// Begin enters Editing(f), seeding the buffer with the field's current
// value. Only one field may be edited at a time, and only in preview mode.
func (s *Session) Begin(f models.EditableField) error {
	if !s.preview {
		return ErrNotPreviewing
	}
	if _, err := ParseField(string(f)); err != nil {
		return err
	}
	if s.editing != "" {
		return ErrAlreadyEditing
	}
	s.editing = f
	s.buffer = s.values[f]
	return nil
}

// SetBuffer replaces the in-progress edit text.
func (s *Session) SetBuffer(text string) error {
	if s.editing == "" {
		return ErrNotEditing
	}
	s.buffer = text
	return nil
}

// Commit leaves edit mode and applies the buffer as the field's new value,
// including an explicitly empty buffer, which clears the field. Exactly one
// updater call is made per commit; the session returns to Viewing even when
// the updater fails.
func (s *Session) Commit() error {
	if s.editing == "" {
		return ErrNotEditing
	}
	field, value := s.editing, s.buffer
	s.editing = ""
	s.buffer = ""
	s.values[field] = value
	return s.updater.UpdateField(field, value)
}

// Cancel leaves edit mode discarding the buffer. No updater call is made.
func (s *Session) Cancel() error {
	if s.editing == "" {
		return ErrNotEditing
	}
	s.editing = ""
	s.buffer = ""
	return nil
}

// Clear commits an empty value for a field directly from Viewing, without
// entering edit mode.
func (s *Session) Clear(f models.EditableField) error {
	if !s.preview {
		return ErrNotPreviewing
	}
	if _, err := ParseField(string(f)); err != nil {
		return err
	}
	if s.editing != "" {
		return ErrAlreadyEditing
	}
	s.values[f] = ""
	return s.updater.UpdateField(f, "")
}
