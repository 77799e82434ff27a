// Package template defines payment payload templates and their file-backed store.
//
// A template is an ordered sequence of field declarations; the order is
// load-bearing because it dictates payload segment order. Templates live as
// YAML files in a single directory together with a global configuration that
// supplies process-wide fixed fields (identification code, version, code set)
// and rendering settings.
//
// Basic usage:
//
//	store := template.NewStore(dir)
//	if err := store.EnsureUserDir(); err != nil {
//		log.Fatal(err)
//	}
//
//	doc, err := store.Load("default")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg, err := store.LoadGlobalConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Protected Templates
//
// The shipped default template is marked protected. Store.Save refuses to
// overwrite a protected template under its own identifier and returns
// ErrProtectedTemplate; saving under a new identifier writes an unprotected
// copy and leaves the original untouched. This is the central invariant of
// the store: the shipped default is never mutated in place.
//
// # Concurrency
//
// The global configuration is loaded once, cached, and immutable afterwards,
// so it is safe for any number of concurrent readers. Documents returned by
// Load are owned exclusively by the caller. All writes use write-to-temp
// then rename, so readers never observe a partially written file.
package template
