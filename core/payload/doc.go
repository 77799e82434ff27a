// Package payload assembles the pipe-delimited key:value payment payload
// string from a merged field list.
//
// The pipeline is merge then build: Merge overlays the global configuration's
// fixed fields onto a template document, Build resolves each field value and
// serializes the segments in declared order. Both steps are pure transforms;
// the segment order in the output is the contract the downstream QR reader
// depends on.
//
//	fields := payload.Merge(doc, cfg)
//	out, err := payload.FromConfig(cfg).Build(fields, values)
//	// out: "K:PR|V:01|C:1|R:123456789012345678|N:Recipient Name|I:RSD1000,00|..."
//
// Values containing the segment or key/value delimiters are rejected with
// ErrIllegalCharacter: the grammar defines no escaping, so corrupting the
// payload is never an option.
package payload
