// Command payqr renders a payment template into a pipe-delimited payload and
// writes it as a scannable QR PNG.
//
//	payqr -out qr.png                     # default template
//	payqr -template nezaposlenost -out qr.png
//	payqr -list                           # list stored templates
//	payqr -edit -out qr.png               # interactive form
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrymomot/payqr/core/config"
	"github.com/dmitrymomot/payqr/core/payload"
	"github.com/dmitrymomot/payqr/core/session"
	"github.com/dmitrymomot/payqr/core/template"
	"github.com/dmitrymomot/payqr/internal/ui"
	"github.com/dmitrymomot/payqr/pkg/logger"
	"github.com/dmitrymomot/payqr/pkg/qrcode"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	templateID := flag.String("template", "default", "template identifier")
	outPath := flag.String("out", "", "write the QR PNG to this path")
	list := flag.Bool("list", false, "list stored templates and exit")
	edit := flag.Bool("edit", false, "open the interactive form")
	size := flag.Int("size", cfg.ImageSize, "output image size in pixels")
	ecLevel := flag.String("ec", cfg.ECLevel, "error correction level: L, M, Q or H")
	flag.Parse()

	log := logger.New(
		logger.WithDevelopment(cfg.AppName),
		logger.WithLevel(parseLogLevel(cfg.LogLevel)),
	)

	if err := run(cfg, log, *templateID, *outPath, *list, *edit, *size, qrcode.ParseLevel(*ecLevel)); err != nil {
		log.Error("payqr failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg Config, log *slog.Logger, templateID, outPath string, list, edit bool, size int, level qrcode.Level) error {
	dir := cfg.TemplatesDir
	if dir == "" {
		var err error
		if dir, err = template.DefaultDir(); err != nil {
			return err
		}
	}

	store := template.NewStore(dir)
	if err := store.EnsureUserDir(); err != nil {
		return err
	}

	if list {
		ids, err := store.List()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	if outPath == "" {
		return fmt.Errorf("missing -out path")
	}

	doc, err := store.Load(templateID)
	if err != nil {
		return err
	}
	globalCfg, err := store.LoadGlobalConfig()
	if err != nil {
		return err
	}

	if edit {
		return runForm(store, doc, globalCfg, outPath, size, level)
	}

	sess := session.New(store, doc)
	log.Debug("generating QR code",
		logger.Component("cli"),
		logger.Template(templateID),
		logger.Output(outPath),
		logger.Size(size),
		slog.String("session", sess.ID().String()),
	)

	out, err := payload.FromConfig(globalCfg).BuildDocument(doc, globalCfg, nil)
	if err != nil {
		return err
	}

	matrix, err := qrcode.Encode(out, level)
	if err != nil {
		return err
	}
	img, err := qrcode.Render(matrix, size)
	if err != nil {
		return err
	}
	if err := qrcode.WriteFile(img, outPath); err != nil {
		return err
	}

	log.Info("QR code written", logger.Template(templateID), logger.Output(outPath))
	return nil
}

func runForm(store *template.Store, doc *template.Document, globalCfg *template.GlobalConfig, outPath string, size int, level qrcode.Level) error {
	sess := session.New(store, doc)
	model := ui.NewModel(sess, globalCfg, outPath, size, level)

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ui.Model); ok {
		return m.Err()
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
