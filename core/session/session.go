package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/payqr/core/template"
)

// State is the editing state of a loaded template.
type State int

const (
	// Clean means the document has no unsaved edits.
	Clean State = iota

	// DirtyDefault means a protected template has unsaved edits. It can only
	// reach Clean by saving under a new identifier; in-place saves are
	// rejected.
	DirtyDefault

	// DirtyCustom means a non-protected template has unsaved edits. Saving
	// overwrites it in place.
	DirtyCustom
)

func (s State) String() string {
	switch s {
	case DirtyDefault:
		return "dirty-default"
	case DirtyCustom:
		return "dirty-custom"
	default:
		return "clean"
	}
}

// Session tracks in-memory edits to a single template document and enforces
// the protected-template save policy as explicit state transitions. A
// session is owned by one caller and is not safe for concurrent use.
//
// Edits survive failed saves: the caller can correct the problem and retry
// without losing data.
type Session struct {
	id    uuid.UUID
	store *template.Store
	doc   *template.Document
	state State
}

// New starts an editing session over the given document.
func New(store *template.Store, doc *template.Document) *Session {
	return &Session{
		id:    uuid.New(),
		store: store,
		doc:   doc,
		state: Clean,
	}
}

// ID returns the unique session identifier, used in log attributes.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns the session's document, including unsaved edits.
func (s *Session) Document() *template.Document {
	return s.doc
}

// State returns the current editing state.
func (s *Session) State() State {
	return s.state
}

// Dirty reports whether the session holds unsaved edits.
func (s *Session) Dirty() bool {
	return s.state != Clean
}

// SetField records an edit to the field with the given key. Fixed fields are
// owned by the global configuration and cannot be edited. The first edit
// moves the session out of Clean; an edit that leaves the value unchanged
// does not.
func (s *Session) SetField(key, value string) error {
	f := s.doc.Field(key)
	if f == nil {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if f.Fixed {
		return fmt.Errorf("%w: %s", ErrFixedField, key)
	}
	if f.Default == value {
		return nil
	}

	f.Default = value
	if s.doc.Protected {
		s.state = DirtyDefault
	} else {
		s.state = DirtyCustom
	}

	return nil
}

// Save persists the document. From DirtyCustom an empty identifier (or the
// document's own name) overwrites the template in place. From DirtyDefault a
// new, unused identifier is required; on success the session continues under
// the new identifier with the protected flag cleared. Either way a
// successful save transitions the session to Clean.
func (s *Session) Save(id string) error {
	if s.doc.Protected {
		if id == "" || id == s.doc.Name {
			return fmt.Errorf("%w: %s", ErrIdentifierRequired, s.doc.Name)
		}
		id = template.SanitizeIdentifier(id)
		if s.store.Exists(id) {
			return fmt.Errorf("%w: %s", ErrIdentifierTaken, id)
		}
	}

	if err := s.store.Save(s.doc, id); err != nil {
		return err
	}

	if id != "" && id != s.doc.Name {
		s.doc.Name = id
		s.doc.Protected = false
	}
	s.state = Clean

	return nil
}
