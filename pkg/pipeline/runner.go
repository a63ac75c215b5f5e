package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fennwick/sheetsmith/pkg/cache"
	"github.com/fennwick/sheetsmith/pkg/document"
	"github.com/fennwick/sheetsmith/pkg/errors"
	"github.com/fennwick/sheetsmith/pkg/observability"
	"github.com/fennwick/sheetsmith/pkg/source"
	"github.com/fennwick/sheetsmith/pkg/styles"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache, logger, and TTL - it doesn't
// store run results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// TTL bounds the lifetime of cached builds. Zero caches forever.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete load → build → write pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Path)
	doc, err := source.Load(opts.Path)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Path, "", time.Since(loadStart), err)
		return nil, err
	}
	result.Doc = doc
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Path, string(doc.Kind), result.Stats.LoadTime, nil)

	logger.Info("loaded document",
		"run", result.RunID,
		"name", doc.Name,
		"kind", doc.Kind,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, doc.Name, string(doc.Kind))
	html, hit, err := r.buildWithCache(ctx, doc, opts)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, doc.Name, string(doc.Kind), 0, time.Since(buildStart), err)
		return nil, err
	}
	result.HTML = html
	result.CacheHit = hit
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Bytes = len(html)
	observability.Pipeline().OnBuildComplete(ctx, doc.Name, string(doc.Kind), len(html), result.Stats.BuildTime, nil)

	logger.Info("built document",
		"run", result.RunID,
		"bytes", result.Stats.Bytes,
		"cache_hit", hit,
		"duration", result.Stats.BuildTime)

	// Stage 3: Write
	writeStart := time.Now()
	observability.Pipeline().OnWriteStart(ctx, opts.OutputDir)
	if err := r.write(ctx, result, opts); err != nil {
		observability.Pipeline().OnWriteComplete(ctx, opts.OutputDir, time.Since(writeStart), err)
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)
	observability.Pipeline().OnWriteComplete(ctx, opts.OutputDir, result.Stats.WriteTime, nil)

	logger.Info("wrote output",
		"run", result.RunID,
		"html", result.HTMLPath,
		"pdf", result.PDFPath,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Build renders a loaded document to HTML without touching the cache or the
// filesystem. The serve command uses this for on-the-fly previews.
func (r *Runner) Build(doc *source.Doc, opts Options) ([]byte, error) {
	loader := styles.Loader{Dir: opts.StylesDir}

	var d document.Document
	switch doc.Kind {
	case source.KindItem:
		item := document.NewItemDocument(doc.Data, loader)
		item.AssetDir = filepath.Dir(doc.Path)
		d = item
	case source.KindCharacter:
		d = document.NewCharacterDocument(doc.Data, loader)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown document kind %q", doc.Kind)
	}

	html, err := d.BuildHTML()
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

func (r *Runner) buildWithCache(ctx context.Context, doc *source.Doc, opts Options) ([]byte, bool, error) {
	key := cache.DocumentKey(doc.Raw, opts.cacheKeyOpts()...)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		} else if hit {
			observability.Cache().OnCacheHit(ctx, "document")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "document")
	}

	html, err := r.Build(doc, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, html, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "document", len(html))
	}
	return html, false, nil
}

func (r *Runner) write(ctx context.Context, result *Result, opts Options) error {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to create %s", opts.OutputDir)
	}

	stem := errors.SanitizeOutputName(entityName(result.Doc))
	htmlPath := filepath.Join(opts.OutputDir, stem+".html")
	if err := os.WriteFile(htmlPath, result.HTML, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", htmlPath)
	}
	result.HTMLPath = htmlPath

	if !opts.PDF {
		return nil
	}
	conv := opts.Converter
	if conv == nil {
		var err error
		conv, err = NewChromeConverter("")
		if err != nil {
			return err
		}
	}
	pdfPath := filepath.Join(opts.OutputDir, stem+".pdf")
	if err := conv.Convert(ctx, htmlPath, pdfPath); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "pdf conversion failed for %s", htmlPath)
	}
	result.PDFPath = pdfPath
	return nil
}

// entityName picks the display name the output file is derived from: the
// character name, the item name, or the file stem.
func entityName(doc *source.Doc) string {
	header := doc.Data.Map("header")
	if doc.Kind == source.KindItem {
		if name := header.Str("name", ""); name != "" {
			return name
		}
	}
	if name := header.Str("character_name", ""); name != "" {
		return name
	}
	return doc.Name
}
