// Package pipeline provides the load → build → write pipeline shared by the
// build, batch, and serve commands.
//
// The pipeline consists of three stages:
//
//  1. Load: read and classify the JSON document
//  2. Build: assemble the complete HTML document
//  3. Write: place the output file, optionally converting to PDF
//
// Builds are cached on the document content and the options that influence
// the output, so unchanged documents are skipped.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Path:      "documents/rogue.json",
//	    OutputDir: "output",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTMLPath)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fennwick/sheetsmith/pkg/errors"
	"github.com/fennwick/sheetsmith/pkg/source"
)

// DefaultOutputDir receives generated files when no directory is configured.
const DefaultOutputDir = "output"

// Options contains all configuration for one pipeline run.
type Options struct {
	// Path is the JSON document to build.
	Path string `json:"path"`
	// OutputDir receives the generated files.
	OutputDir string `json:"output_dir,omitempty"`
	// StylesDir optionally overrides the embedded stylesheets.
	StylesDir string `json:"styles_dir,omitempty"`
	// PDF additionally converts the HTML output to PDF.
	PDF bool `json:"pdf,omitempty"`
	// Refresh bypasses the cache and rebuilds unconditionally.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger    *log.Logger `json:"-"`
	Converter Converter   `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" {
		return errors.New(errors.ErrCodeInvalidInput, "document path is required")
	}
	if err := errors.ValidatePath(o.Path); err != nil {
		return err
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// cacheKeyOpts returns the option values that influence the rendered output.
func (o *Options) cacheKeyOpts() []any {
	return []any{o.StylesDir}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and summaries.
	RunID string

	// Doc is the loaded document.
	Doc *source.Doc

	// HTML is the rendered document.
	HTML []byte

	// HTMLPath is where the HTML output was written.
	HTMLPath string

	// PDFPath is where the PDF output was written, when requested.
	PDFPath string

	// CacheHit reports whether the HTML came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LoadTime  time.Duration
	BuildTime time.Duration
	WriteTime time.Duration
	Bytes     int
}
