package template

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var bundled embed.FS

const (
	// configName is the reserved identifier of the global configuration resource.
	configName = "config"

	templateExt = ".yaml"
	filePerm    = 0o644
	dirPerm     = 0o755
)

// Store loads and saves template documents from a directory. One file per
// template, identified by file name without extension; the global
// configuration lives in the same directory under the reserved name "config".
//
// The global configuration is loaded at most once per store and cached for
// the store's lifetime. Documents are owned by the caller that loaded them.
type Store struct {
	dir string

	mu  sync.Mutex
	cfg *GlobalConfig
}

// NewStore creates a store rooted at dir. The directory is not created or
// seeded; use EnsureUserDir for first-run setup.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// DefaultDir returns the per-user template directory (~/.payqr/templates).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".payqr", "templates"), nil
}

// EnsureUserDir creates the store directory if needed and seeds it with the
// bundled templates when it holds none, and with the bundled global
// configuration when that file is missing. Existing files are never replaced.
func (s *Store) EnsureUserDir() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}

	existing, err := s.List()
	if err != nil {
		return err
	}

	entries, err := bundled.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read bundled templates: %w", err)
	}

	for _, entry := range entries {
		id := strings.TrimSuffix(entry.Name(), templateExt)
		if id == configName {
			if _, err := os.Stat(s.path(configName)); err == nil {
				continue
			}
		} else if len(existing) > 0 {
			// Never re-seed a directory the user already populated.
			continue
		}

		data, err := bundled.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read bundled template %s: %w", entry.Name(), err)
		}
		if err := writeAtomic(s.path(id), data); err != nil {
			return err
		}
	}

	return nil
}

// List returns the identifiers of all templates in the store, sorted,
// excluding the global configuration.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, templateExt) {
			continue
		}
		id := strings.TrimSuffix(name, templateExt)
		if id != configName {
			ids = append(ids, id)
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// Exists reports whether a template with the given identifier is stored.
func (s *Store) Exists(id string) bool {
	if id == "" || id == configName {
		return false
	}
	_, err := os.Stat(s.path(id))
	return err == nil
}

// Load reads and validates the template with the given identifier. The
// returned document declares every fixed field known to the global
// configuration; a template missing one fails with ErrTemplateLoad.
func (s *Store) Load(id string) (*Document, error) {
	if id == "" || id == configName {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, id, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, id, err)
	}
	if doc.Name == "" {
		doc.Name = id
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTemplateLoad, id, err)
	}

	cfg, err := s.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	for _, fixed := range cfg.FixedFields {
		if doc.Field(fixed.Key) == nil {
			return nil, fmt.Errorf("%w: %s: missing fixed field %q", ErrTemplateLoad, id, fixed.Key)
		}
	}

	return &doc, nil
}

// LoadGlobalConfig reads and validates the global configuration. The first
// successful load is cached for the store's lifetime; a failed load is not
// cached so the caller can fix the resource and retry.
func (s *Store) LoadGlobalConfig() (*GlobalConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg != nil {
		return s.cfg, nil
	}

	data, err := os.ReadFile(s.path(configName))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	cfg := GlobalConfig{
		Separator:   "|",
		KVSeparator: ":",
		TrimEmpty:   true,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	s.cfg = &cfg
	return s.cfg, nil
}

// Save writes the document under the given identifier using atomic replace
// semantics: a crash mid-write never corrupts the previous file.
//
// Protected documents are never overwritten in place: saving one under its
// own identifier (or an empty identifier) fails with ErrProtectedTemplate.
// Saving under a different identifier writes a copy named after the new
// identifier with the protected flag cleared, leaving the original untouched.
func (s *Store) Save(doc *Document, id string) error {
	if id == "" {
		id = doc.Name
	}
	if id == "" || id == configName || id != SanitizeIdentifier(id) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	if doc.Protected && id == doc.Name {
		return fmt.Errorf("%w: %s", ErrProtectedTemplate, doc.Name)
	}

	out := *doc
	out.Fields = append([]FieldSpec(nil), doc.Fields...)
	if id != doc.Name {
		out.Name = id
		out.Protected = false
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to encode template %s: %w", id, err)
	}

	return writeAtomic(s.path(id), data)
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+templateExt)
}

// writeAtomic writes data to a temporary sibling and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}
