package template

import (
	"fmt"
	"regexp"
)

// Field type markers. A field with no explicit type holds free text.
const (
	// TypeAmount marks a compound currency+amount field. Its value is rendered
	// into the payload as a single segment: currency code followed by a
	// decimal-comma amount, e.g. "RSD1000,00".
	TypeAmount = "amount"
)

// FieldSpec describes a single payload field: its wire key, position, label
// for form rendering, default value and validation flags.
type FieldSpec struct {
	// Key is the wire key written into the payload segment.
	Key string `yaml:"key"`

	// Order is the 1-based position in the final payload. It is derived from
	// the field's position in the document sequence on load; a declared value
	// that disagrees with the sequence position is a load error.
	Order int `yaml:"order,omitempty"`

	// Label is the human-readable name shown by form renderers.
	Label string `yaml:"label,omitempty"`

	// Default is the field value used when the caller supplies none.
	// In-memory edits of a document update this value.
	Default string `yaml:"default,omitempty"`

	// Required fields must resolve to a non-empty value at build time.
	Required bool `yaml:"required,omitempty"`

	// Fixed fields are sourced from the global configuration and are not
	// editable by the template author. Their values are replaced at merge time.
	Fixed bool `yaml:"fixed,omitempty"`

	// Type selects special handling for the field value ("" or TypeAmount).
	Type string `yaml:"type,omitempty"`
}

// Document is a user-editable template: an ordered field set plus a name.
// A protected document (the shipped default) is never overwritten in place;
// Store.Save enforces this.
type Document struct {
	Name      string      `yaml:"name"`
	Protected bool        `yaml:"protected,omitempty"`
	Fields    []FieldSpec `yaml:"fields"`
}

// Field returns the field with the given key, or nil if the document does not
// declare it.
func (d *Document) Field(key string) *FieldSpec {
	for i := range d.Fields {
		if d.Fields[i].Key == key {
			return &d.Fields[i]
		}
	}
	return nil
}

// Keys returns the declared field keys in payload order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		keys[i] = f.Key
	}
	return keys
}

// validate checks the document invariants and assigns contiguous order values.
func (d *Document) validate() error {
	if len(d.Fields) == 0 {
		return fmt.Errorf("document declares no fields")
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Key == "" {
			return fmt.Errorf("field %d has no key", i)
		}
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("duplicate field key %q", f.Key)
		}
		seen[f.Key] = struct{}{}

		// Sequence position is authoritative; a conflicting declared order
		// would silently reorder the payload, so reject it.
		if f.Order != 0 && f.Order != i+1 {
			return fmt.Errorf("field %q declares order %d but appears at position %d", f.Key, f.Order, i+1)
		}
		f.Order = i + 1
	}

	return nil
}

// GlobalConfig holds the process-wide fixed fields and rendering settings.
// It is loaded once per process and must not be mutated afterwards; every
// template merge overlays its fixed fields.
type GlobalConfig struct {
	// Separator joins the rendered payload segments. Defaults to "|".
	Separator string `yaml:"separator"`

	// KVSeparator joins a key with its value inside a segment. Defaults to ":".
	KVSeparator string `yaml:"kvSeparator"`

	// TrimEmpty drops non-required fields that resolve to an empty value
	// instead of emitting empty segments. Defaults to true.
	TrimEmpty bool `yaml:"trimEmpty"`

	// FixedFields are overlaid onto every template at merge time, replacing
	// the template's value for any matching key.
	FixedFields []FieldSpec `yaml:"fixedFields"`
}

// FixedField returns the configured fixed field with the given key, or nil.
func (c *GlobalConfig) FixedField(key string) *FieldSpec {
	for i := range c.FixedFields {
		if c.FixedFields[i].Key == key {
			return &c.FixedFields[i]
		}
	}
	return nil
}

func (c *GlobalConfig) validate() error {
	if c.Separator == "" {
		return fmt.Errorf("separator is empty")
	}
	if c.KVSeparator == "" {
		return fmt.Errorf("kv separator is empty")
	}

	seen := make(map[string]struct{}, len(c.FixedFields))
	for i := range c.FixedFields {
		f := &c.FixedFields[i]
		if f.Key == "" {
			return fmt.Errorf("fixed field %d has no key", i)
		}
		if _, dup := seen[f.Key]; dup {
			return fmt.Errorf("duplicate fixed field key %q", f.Key)
		}
		seen[f.Key] = struct{}{}
		f.Fixed = true
		f.Order = i + 1
	}

	return nil
}

var identifierRe = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeIdentifier normalizes a user-supplied template name into a safe
// file identifier, replacing every disallowed character with an underscore.
func SanitizeIdentifier(name string) string {
	return identifierRe.ReplaceAllString(name, "_")
}
