package qrcode

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	qr "github.com/skip2/go-qrcode"
)

// Level selects the QR error correction level.
type Level int

const (
	// Low recovers from ~7% data corruption.
	Low Level = iota
	// Medium recovers from ~15% data corruption. Default for most uses.
	Medium
	// High recovers from ~25% data corruption.
	High
	// Highest recovers from ~30% data corruption.
	Highest
)

// ParseLevel maps the conventional single-letter names (L, M, Q, H) to a
// Level. Unknown names fall back to Medium.
func ParseLevel(s string) Level {
	switch s {
	case "L", "l":
		return Low
	case "Q", "q":
		return High
	case "H", "h":
		return Highest
	default:
		return Medium
	}
}

func (l Level) String() string {
	switch l {
	case Low:
		return "L"
	case High:
		return "Q"
	case Highest:
		return "H"
	default:
		return "M"
	}
}

func (l Level) recoveryLevel() qr.RecoveryLevel {
	switch l {
	case Low:
		return qr.Low
	case High:
		return qr.High
	case Highest:
		return qr.Highest
	default:
		return qr.Medium
	}
}

// Byte-mode capacity of QR version 40 per recovery level.
var maxCapacity = map[Level]int{
	Low:     2953,
	Medium:  2331,
	High:    1663,
	Highest: 1273,
}

// Capacity returns the maximum content length in bytes encodable at the
// given level.
func Capacity(level Level) int {
	return maxCapacity[level]
}

// Matrix is the 2D grid of QR modules, true for dark. It includes the quiet
// zone border required by scanners.
type Matrix [][]bool

// Size returns the matrix side length in modules.
func (m Matrix) Size() int {
	return len(m)
}

// Encode produces the module matrix for content at the given recovery level.
// The symbol version is auto-selected to fit the content; content longer
// than the largest version's capacity fails with ErrPayloadTooLarge.
func Encode(content string, level Level) (Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len(content) > maxCapacity[level] {
		return nil, fmt.Errorf("%w: %d bytes, max %d at level %s",
			ErrPayloadTooLarge, len(content), maxCapacity[level], level)
	}

	code, err := qr.New(content, level.recoveryLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return Matrix(code.Bitmap()), nil
}

// Render rasterizes the matrix to a square grayscale image of exactly
// size x size pixels, one solid block per module, nearest-neighbor scaling,
// no anti-aliasing. Output is bit-reproducible for a given matrix and size.
func Render(m Matrix, size int) (image.Image, error) {
	modules := m.Size()
	if modules == 0 {
		return nil, ErrEmptyContent
	}
	if size < modules {
		return nil, fmt.Errorf("%w: %d pixels for %d modules", ErrInvalidSize, size, modules)
	}

	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		my := y * modules / size
		for x := 0; x < size; x++ {
			if m[my][x*modules/size] {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return img, nil
}

// WriteFile persists the image as PNG at path using write-to-temp then
// rename, so a failed write never leaves a partial file behind.
func WriteFile(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Best effort cleanup
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Generate encodes content at Medium recovery level and returns the rendered
// PNG bytes. Convenience for callers that do not need the matrix.
func Generate(content string, size int) ([]byte, error) {
	return GenerateLevel(content, size, Medium)
}

// GenerateLevel is Generate with an explicit recovery level.
func GenerateLevel(content string, size int, level Level) ([]byte, error) {
	m, err := Encode(content, level)
	if err != nil {
		return nil, err
	}

	img, err := Render(m, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return buf.Bytes(), nil
}

// GenerateBase64Image returns the PNG as a base64 data URI for direct HTML
// embedding.
func GenerateBase64Image(content string, size int) (string, error) {
	data, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
