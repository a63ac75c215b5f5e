package pipeline

import (
	"context"
	"os/exec"
	"path/filepath"

	"github.com/fennwick/sheetsmith/pkg/errors"
)

// Converter turns a rendered HTML file into a PDF.
type Converter interface {
	Convert(ctx context.Context, htmlPath, pdfPath string) error
}

// chromeCandidates are the binary names tried when no path is configured.
var chromeCandidates = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
}

// ChromeConverter converts HTML to PDF through headless Chrome.
type ChromeConverter struct {
	// Path is the Chrome binary.
	Path string
}

// NewChromeConverter resolves the Chrome binary. An empty path searches PATH
// for the common binary names.
func NewChromeConverter(path string) (*ChromeConverter, error) {
	if path != "" {
		resolved, err := exec.LookPath(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chrome binary %q not found", path)
		}
		return &ChromeConverter{Path: resolved}, nil
	}
	for _, name := range chromeCandidates {
		if resolved, err := exec.LookPath(name); err == nil {
			return &ChromeConverter{Path: resolved}, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "no chrome binary found for pdf conversion")
}

// Convert prints the HTML file to PDF.
func (c *ChromeConverter) Convert(ctx context.Context, htmlPath, pdfPath string) error {
	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, c.Path,
		"--headless",
		"--disable-gpu",
		"--no-pdf-header-footer",
		"--print-to-pdf="+pdfPath,
		"file://"+abs,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "chrome failed: %s", out)
	}
	return nil
}

// Ensure ChromeConverter implements Converter.
var _ Converter = (*ChromeConverter)(nil)
