package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/fennwick/sheetsmith/pkg/cache"
	"github.com/fennwick/sheetsmith/pkg/errors"
	"github.com/fennwick/sheetsmith/pkg/source"
)

const characterJSON = `{
	"header": {"character_name": "Ember Nightshade"},
	"abilities": {"dexterity": {"score": 18}}
}`

const itemJSON = `{
	"header": {"name": "Flametongue"},
	"pages": [{"sections": [{"title": "Description", "content": {"type": "text", "text": "Flames."}}]}]
}`

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newFileRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(c, quietLogger())
}

func TestOptionsValidation(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty path code = %v, want ErrCodeInvalidInput", errors.GetCode(err))
	}

	opts = Options{Path: "../escape.json"}
	if err := opts.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("traversal path code = %v, want ErrCodeInvalidPath", errors.GetCode(err))
	}

	opts = Options{Path: "doc.json"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want default %q", opts.OutputDir, DefaultOutputDir)
	}
	if opts.Logger == nil {
		t.Error("a discard logger should be installed")
	}

	// Idempotent: a second call leaves the options alone.
	opts.OutputDir = "elsewhere"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.OutputDir != "elsewhere" {
		t.Error("second validation should not reapply defaults")
	}
}

func TestExecuteCharacter(t *testing.T) {
	runner := newFileRunner(t)
	outDir := t.TempDir()

	result, err := runner.Execute(context.Background(), Options{
		Path:      writeDoc(t, characterJSON),
		OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if result.CacheHit {
		t.Error("first run should not hit the cache")
	}
	if result.Doc.Kind != source.KindCharacter {
		t.Errorf("Kind = %v, want character", result.Doc.Kind)
	}
	if !strings.Contains(string(result.HTML), "Ember Nightshade") {
		t.Error("rendered HTML missing the character name")
	}

	// Output file stem derives from the character name.
	want := filepath.Join(outDir, "Ember_Nightshade.html")
	if result.HTMLPath != want {
		t.Errorf("HTMLPath = %q, want %q", result.HTMLPath, want)
	}
	if _, err := os.Stat(result.HTMLPath); err != nil {
		t.Errorf("output file missing: %v", err)
	}
	if result.PDFPath != "" {
		t.Error("no PDF requested")
	}
}

func TestExecuteCacheHit(t *testing.T) {
	runner := newFileRunner(t)
	opts := Options{Path: writeDoc(t, itemJSON), OutputDir: t.TempDir()}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if first.CacheHit {
		t.Error("first run should be a miss")
	}
	if !second.CacheHit {
		t.Error("second run of an unchanged document should hit the cache")
	}
	if string(first.HTML) != string(second.HTML) {
		t.Error("cached HTML should match the fresh build")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	runner := newFileRunner(t)
	opts := Options{Path: writeDoc(t, itemJSON), OutputDir: t.TempDir()}

	if _, err := runner.Execute(context.Background(), opts); err != nil {
		t.Fatal(err)
	}

	opts.Refresh = true
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheHit {
		t.Error("refresh should rebuild even when cached")
	}
}

func TestExecuteStylesDirChangesKey(t *testing.T) {
	runner := newFileRunner(t)
	path := writeDoc(t, itemJSON)
	outDir := t.TempDir()

	if _, err := runner.Execute(context.Background(), Options{Path: path, OutputDir: outDir}); err != nil {
		t.Fatal(err)
	}

	stylesDir := t.TempDir()
	css := filepath.Join(stylesDir, "sheet.css")
	if err := os.WriteFile(css, []byte("/* override */"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := runner.Execute(context.Background(), Options{
		Path:      path,
		OutputDir: outDir,
		StylesDir: stylesDir,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheHit {
		t.Error("a different styles dir should miss the cache")
	}
	if !strings.Contains(string(result.HTML), "/* override */") {
		t.Error("override stylesheet should be inlined")
	}
}

func TestExecuteMissingDocument(t *testing.T) {
	runner := NewRunner(nil, quietLogger())
	_, err := runner.Execute(context.Background(), Options{
		Path:      filepath.Join(t.TempDir(), "missing.json"),
		OutputDir: t.TempDir(),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want ErrCodeFileNotFound", errors.GetCode(err))
	}
}

func TestBuildUnknownKind(t *testing.T) {
	runner := NewRunner(nil, quietLogger())
	doc := &source.Doc{Kind: source.Kind("scroll")}
	_, err := runner.Build(doc, Options{})
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want ErrCodeUnsupported", errors.GetCode(err))
	}
}

func TestEntityName(t *testing.T) {
	tests := []struct {
		name string
		doc  *source.Doc
		want string
	}{
		{
			"character name wins",
			&source.Doc{Name: "file", Kind: source.KindCharacter, Data: map[string]any{
				"header": map[string]any{"character_name": "Ember"},
			}},
			"Ember",
		},
		{
			"item name wins",
			&source.Doc{Name: "file", Kind: source.KindItem, Data: map[string]any{
				"header": map[string]any{"name": "Flametongue"},
			}},
			"Flametongue",
		},
		{
			"falls back to file stem",
			&source.Doc{Name: "file", Kind: source.KindCharacter, Data: map[string]any{}},
			"file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entityName(tt.doc); got != tt.want {
				t.Errorf("entityName() = %q, want %q", got, tt.want)
			}
		})
	}
}

// stubConverter records conversion requests without running Chrome.
type stubConverter struct {
	calls int
}

func (s *stubConverter) Convert(ctx context.Context, htmlPath, pdfPath string) error {
	s.calls++
	return os.WriteFile(pdfPath, []byte("%PDF-stub"), 0644)
}

func TestExecutePDF(t *testing.T) {
	runner := newFileRunner(t)
	conv := &stubConverter{}
	outDir := t.TempDir()

	result, err := runner.Execute(context.Background(), Options{
		Path:      writeDoc(t, itemJSON),
		OutputDir: outDir,
		PDF:       true,
		Converter: conv,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if conv.calls != 1 {
		t.Errorf("converter calls = %d, want 1", conv.calls)
	}
	want := filepath.Join(outDir, "Flametongue.pdf")
	if result.PDFPath != want {
		t.Errorf("PDFPath = %q, want %q", result.PDFPath, want)
	}
	if _, err := os.Stat(result.PDFPath); err != nil {
		t.Errorf("pdf file missing: %v", err)
	}
}
