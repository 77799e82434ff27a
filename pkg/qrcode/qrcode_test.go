package qrcode_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payqr/pkg/qrcode"
)

const samplePayload = "K:PR|V:01|C:1|R:123456789012345678|N:Recipient Name|I:RSD1000,00|P:Payment Purpose|SF:123|S:Description"

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("produces a square matrix with quiet zone", func(t *testing.T) {
		t.Parallel()
		m, err := qrcode.Encode(samplePayload, qrcode.Medium)
		require.NoError(t, err)
		require.NotZero(t, m.Size())
		for _, row := range m {
			require.Len(t, row, m.Size())
		}

		// The quiet zone keeps the matrix edge light.
		for i := 0; i < m.Size(); i++ {
			assert.False(t, m[0][i])
			assert.False(t, m[i][0])
		}
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Encode("", qrcode.Medium)
		require.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("capacity boundary", func(t *testing.T) {
		t.Parallel()
		limit := qrcode.Capacity(qrcode.Low)

		_, err := qrcode.Encode(strings.Repeat("a", limit), qrcode.Low)
		require.NoError(t, err, "content at the capacity limit must encode")

		_, err = qrcode.Encode(strings.Repeat("a", limit+1), qrcode.Low)
		require.ErrorIs(t, err, qrcode.ErrPayloadTooLarge)
	})

	t.Run("capacity shrinks with recovery level", func(t *testing.T) {
		t.Parallel()
		assert.Greater(t, qrcode.Capacity(qrcode.Low), qrcode.Capacity(qrcode.Medium))
		assert.Greater(t, qrcode.Capacity(qrcode.Medium), qrcode.Capacity(qrcode.High))
		assert.Greater(t, qrcode.Capacity(qrcode.High), qrcode.Capacity(qrcode.Highest))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("exact requested dimensions, two colors only", func(t *testing.T) {
		t.Parallel()
		m, err := qrcode.Encode(samplePayload, qrcode.Medium)
		require.NoError(t, err)

		img, err := qrcode.Render(m, 490)
		require.NoError(t, err)
		bounds := img.Bounds()
		assert.Equal(t, 490, bounds.Dx())
		assert.Equal(t, 490, bounds.Dy())

		for y := bounds.Min.Y; y < bounds.Max.Y; y += 7 {
			for x := bounds.Min.X; x < bounds.Max.X; x += 7 {
				r, g, b, _ := img.At(x, y).RGBA()
				require.Equal(t, r, g)
				require.Equal(t, g, b)
				require.True(t, r == 0 || r == 0xffff, "module blocks must be pure black or white")
			}
		}
	})

	t.Run("bit-reproducible", func(t *testing.T) {
		t.Parallel()
		m1, err := qrcode.Encode(samplePayload, qrcode.Medium)
		require.NoError(t, err)
		m2, err := qrcode.Encode(samplePayload, qrcode.Medium)
		require.NoError(t, err)

		img1, err := qrcode.Render(m1, 300)
		require.NoError(t, err)
		img2, err := qrcode.Render(m2, 300)
		require.NoError(t, err)

		var buf1, buf2 bytes.Buffer
		require.NoError(t, png.Encode(&buf1, img1))
		require.NoError(t, png.Encode(&buf2, img2))
		assert.Equal(t, buf1.Bytes(), buf2.Bytes())
	})

	t.Run("size smaller than the matrix", func(t *testing.T) {
		t.Parallel()
		m, err := qrcode.Encode("short", qrcode.Medium)
		require.NoError(t, err)

		_, err = qrcode.Render(m, m.Size()-1)
		require.ErrorIs(t, err, qrcode.ErrInvalidSize)
	})
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes a decodable PNG", func(t *testing.T) {
		t.Parallel()
		m, err := qrcode.Encode(samplePayload, qrcode.Medium)
		require.NoError(t, err)
		img, err := qrcode.Render(m, 200)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "qr.png")
		require.NoError(t, qrcode.WriteFile(img, path))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		decoded, err := png.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	})

	t.Run("failed write leaves no partial file", func(t *testing.T) {
		t.Parallel()
		m, err := qrcode.Encode("short", qrcode.Medium)
		require.NoError(t, err)
		img, err := qrcode.Render(m, m.Size())
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "missing", "qr.png")
		require.ErrorIs(t, qrcode.WriteFile(img, path), qrcode.ErrWrite)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("png bytes", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Generate(samplePayload, 256)
		require.NoError(t, err)

		decoded, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, decoded.Bounds().Dx())
	})

	t.Run("base64 data uri", func(t *testing.T) {
		t.Parallel()
		uri, err := qrcode.GenerateBase64Image(samplePayload, 256)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, qrcode.Low, qrcode.ParseLevel("L"))
	assert.Equal(t, qrcode.Medium, qrcode.ParseLevel("M"))
	assert.Equal(t, qrcode.High, qrcode.ParseLevel("Q"))
	assert.Equal(t, qrcode.Highest, qrcode.ParseLevel("h"))
	assert.Equal(t, qrcode.Medium, qrcode.ParseLevel("unknown"))

	assert.Equal(t, "L", qrcode.Low.String())
	assert.Equal(t, "M", qrcode.Medium.String())
	assert.Equal(t, "Q", qrcode.High.String())
	assert.Equal(t, "H", qrcode.Highest.String())
}
