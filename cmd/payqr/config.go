package main

// Config holds process-level settings, loaded from the environment (and an
// optional .env file). Command-line flags override these where both exist.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"payqr"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// TemplatesDir overrides the per-user template directory
	// (~/.payqr/templates by default).
	TemplatesDir string `env:"PAYQR_TEMPLATES_DIR"`

	// ImageSize is the square output image size in pixels.
	ImageSize int `env:"PAYQR_IMAGE_SIZE" envDefault:"490"`

	// ECLevel is the QR error correction level: L, M, Q or H.
	ECLevel string `env:"PAYQR_EC_LEVEL" envDefault:"M"`
}
