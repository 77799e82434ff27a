package template

import "errors"

var (
	// ErrTemplateLoad indicates the template resource is missing, malformed,
	// or does not satisfy the schema required by the global configuration.
	ErrTemplateLoad = errors.New("failed to load template")

	// ErrConfigLoad indicates the global configuration resource is missing or malformed.
	ErrConfigLoad = errors.New("failed to load global config")

	// ErrProtectedTemplate is returned when a save would overwrite a protected
	// template in place. The caller must supply a new identifier instead.
	ErrProtectedTemplate = errors.New("protected template cannot be overwritten in place")

	// ErrInvalidIdentifier is returned for empty or reserved template identifiers.
	ErrInvalidIdentifier = errors.New("invalid template identifier")
)
