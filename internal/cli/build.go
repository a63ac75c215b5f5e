package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fennwick/sheetsmith/pkg/pipeline"
	"github.com/fennwick/sheetsmith/pkg/source"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output  string // output directory
	styles  string // stylesheet override directory
	pdf     bool   // additionally convert to PDF
	noCache bool   // disable the build cache entirely
	refresh bool   // bypass the cache for this run and rebuild
}

// buildCommand creates the build command for rendering a single document.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <document>",
		Short: "Render a document to printable HTML",
		Long: `Build renders one JSON document to an HTML file. The document is
resolved by name against the configured documents directory, or used
directly when the argument is a path to a JSON file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&opts.styles, "styles", "", "stylesheet override directory")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "additionally convert the output to PDF")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and rebuild")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, arg string, opts *buildOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	path, err := resolveDocument(cfg.DocumentsDir, arg)
	if err != nil {
		return err
	}

	pipelineOpts := pipeline.Options{
		Path:      path,
		OutputDir: firstNonEmpty(opts.output, cfg.OutputDir),
		StylesDir: firstNonEmpty(opts.styles, cfg.StylesDir),
		PDF:       opts.pdf,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	}
	if opts.pdf && cfg.PDF.ChromePath != "" {
		conv, err := pipeline.NewChromeConverter(cfg.PDF.ChromePath)
		if err != nil {
			return err
		}
		pipelineOpts.Converter = conv
	}

	runner := c.newRunner(ctx, cfg, opts.noCache)
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building %s...", arg))
	spinner.Start()

	result, err := runner.Execute(ctx, pipelineOpts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Build failed: %v", err))
		return err
	}
	if spinner.Cancelled() {
		spinner.Stop()
		return ctx.Err()
	}

	spinner.StopWithSuccess(fmt.Sprintf("Built %s (%s)", result.Doc.Name, result.Doc.Kind))
	printStats(result.Stats.Bytes, result.Stats.BuildTime.String(), result.CacheHit)
	printFile(result.HTMLPath)
	if result.PDFPath != "" {
		printFile(result.PDFPath)
	}
	return nil
}

// resolveDocument maps the command argument to a document path. A path to an
// existing JSON file is used as-is, anything else is treated as a name in the
// documents directory.
func resolveDocument(dir, arg string) (string, error) {
	if strings.HasSuffix(arg, ".json") {
		if _, err := os.Stat(arg); err == nil {
			return arg, nil
		}
	}
	doc, err := source.Find(dir, arg)
	if err != nil {
		return "", err
	}
	return doc.Path, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
