// Package qrcode encodes strings into QR module matrices and renders them to
// PNG images.
//
// The pipeline is split so each stage stays testable on its own: Encode turns
// content into a Matrix of dark/light modules (symbol version auto-selected,
// recovery level configurable), Render rasterizes the matrix to a square
// image with one solid block per module, and WriteFile persists the PNG
// atomically.
//
// Generate raw PNG bytes:
//
//	pngBytes, err := qrcode.Generate("K:PR|V:01|...", 490)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or run the stages individually:
//
//	m, err := qrcode.Encode(payload, qrcode.Low)
//	if err != nil {
//		log.Fatal(err) // qrcode.ErrPayloadTooLarge when over capacity
//	}
//	img, err := qrcode.Render(m, 490)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := qrcode.WriteFile(img, "out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Capacity
//
// Content length is checked against the byte capacity of QR version 40 at
// the chosen recovery level (2953 bytes at Low down to 1273 at Highest);
// over-capacity content fails with ErrPayloadTooLarge before any encoding
// work happens.
//
// # Determinism
//
// Render uses nearest-neighbor scaling with no anti-aliasing, so the output
// image is bit-reproducible for a given matrix and size. This supports exact
// round-trip testing of generated codes.
package qrcode
