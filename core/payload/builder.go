package payload

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/payqr/core/template"
)

// Merge produces the effective field list for a document under the global
// configuration: every template field in declared order, with fixed-field
// values and flags replaced by the configuration's entries, followed by any
// configuration fields the template does not declare, in configuration order.
//
// Merge is a pure function; neither input is mutated and the result is
// deterministic for a given pair of inputs.
func Merge(doc *template.Document, cfg *template.GlobalConfig) []template.FieldSpec {
	fields := make([]template.FieldSpec, 0, len(doc.Fields)+len(cfg.FixedFields))

	for _, f := range doc.Fields {
		if fixed := cfg.FixedField(f.Key); fixed != nil {
			f.Default = fixed.Default
			f.Fixed = true
		}
		fields = append(fields, f)
	}

	for _, fixed := range cfg.FixedFields {
		if doc.Field(fixed.Key) == nil {
			fields = append(fields, fixed)
		}
	}

	for i := range fields {
		fields[i].Order = i + 1
	}

	return fields
}

// Builder serializes a merged field list into the pipe-delimited payload
// string. The zero value is not usable; construct with New or FromConfig.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	separator string
	kvSep     string
	trimEmpty bool
}

// Option configures a Builder during construction.
type Option func(*Builder)

// WithSeparator sets the segment separator (default "|").
func WithSeparator(sep string) Option {
	return func(b *Builder) {
		if sep != "" {
			b.separator = sep
		}
	}
}

// WithKVSeparator sets the key/value separator (default ":").
func WithKVSeparator(sep string) Option {
	return func(b *Builder) {
		if sep != "" {
			b.kvSep = sep
		}
	}
}

// WithTrimEmpty controls whether non-required fields resolving to an empty
// value are omitted from the payload (default true).
func WithTrimEmpty(trim bool) Option {
	return func(b *Builder) {
		b.trimEmpty = trim
	}
}

// New creates a Builder with the given options.
func New(opts ...Option) *Builder {
	b := &Builder{
		separator: "|",
		kvSep:     ":",
		trimEmpty: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromConfig creates a Builder using the rendering settings of the global
// configuration.
func FromConfig(cfg *template.GlobalConfig) *Builder {
	return New(
		WithSeparator(cfg.Separator),
		WithKVSeparator(cfg.KVSeparator),
		WithTrimEmpty(cfg.TrimEmpty),
	)
}

// Build renders the fields, in order, into the payload string. Each field's
// value resolves to the explicit value from values when present and
// non-empty, else the field default; a required field with no value fails
// with ErrMissingRequiredField. Amount-typed fields are validated against
// the currency and amount grammars. Any resolved value containing a
// delimiter fails with ErrIllegalCharacter.
//
// Build has no side effects and yields byte-identical output for identical
// inputs.
func (b *Builder) Build(fields []template.FieldSpec, values map[string]string) (string, error) {
	segments := make([]string, 0, len(fields))

	for _, f := range fields {
		value, ok := values[f.Key]
		if !ok || value == "" {
			value = f.Default
		}

		if value == "" {
			if f.Required {
				return "", fmt.Errorf("%w: %s", ErrMissingRequiredField, f.Key)
			}
			if b.trimEmpty {
				continue
			}
		}

		if f.Type == template.TypeAmount && value != "" {
			if _, _, err := SplitAmount(value); err != nil {
				return "", fmt.Errorf("%s: %w", f.Key, err)
			}
		}

		if strings.Contains(value, b.separator) || strings.Contains(value, b.kvSep) {
			return "", fmt.Errorf("%w: %s", ErrIllegalCharacter, f.Key)
		}

		segments = append(segments, f.Key+b.kvSep+value)
	}

	return strings.Join(segments, b.separator), nil
}

// BuildDocument merges the document with the global configuration and builds
// the payload in one step.
func (b *Builder) BuildDocument(doc *template.Document, cfg *template.GlobalConfig, values map[string]string) (string, error) {
	return b.Build(Merge(doc, cfg), values)
}
