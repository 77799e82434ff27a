package session

import "errors"

var (
	// ErrUnknownField is returned when an edit targets a key the document
	// does not declare.
	ErrUnknownField = errors.New("unknown field key")

	// ErrFixedField is returned when an edit targets a fixed field, whose
	// value is owned by the global configuration.
	ErrFixedField = errors.New("fixed field is not editable")

	// ErrIdentifierRequired is returned when saving edits to a protected
	// template without supplying a new identifier.
	ErrIdentifierRequired = errors.New("saving a protected template requires a new identifier")

	// ErrIdentifierTaken is returned when the new identifier already names a
	// stored template.
	ErrIdentifierTaken = errors.New("template identifier already exists")
)
