package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/fennwick/sheetsmith/pkg/pipeline"
	"github.com/fennwick/sheetsmith/pkg/source"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	output      string // output directory
	styles      string // stylesheet override directory
	pdf         bool   // additionally convert to PDF
	noCache     bool   // disable the build cache entirely
	refresh     bool   // bypass the cache and rebuild
	interactive bool   // pick a single document from a list
}

// batchCommand creates the batch command for rendering every document.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render all documents in the documents directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&opts.styles, "styles", "", "stylesheet override directory")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "additionally convert the outputs to PDF")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and rebuild")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a single document from a list")

	return cmd
}

func (c *CLI) runBatch(cmd *cobra.Command, opts *batchOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	paths, err := source.Discover(cfg.DocumentsDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		printInfo("No documents found in %s", cfg.DocumentsDir)
		return nil
	}

	docs := make([]*source.Doc, 0, len(paths))
	for _, p := range paths {
		doc, err := source.Load(p)
		if err != nil {
			printWarning("Skipping %s: %v", p, err)
			continue
		}
		docs = append(docs, doc)
	}

	if opts.interactive {
		selected, err := pickDocument(docs)
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}
		docs = []*source.Doc{selected}
	}

	runner := c.newRunner(ctx, cfg, opts.noCache)
	defer runner.Cache.Close()

	var converter pipeline.Converter
	if opts.pdf && cfg.PDF.ChromePath != "" {
		conv, err := pipeline.NewChromeConverter(cfg.PDF.ChromePath)
		if err != nil {
			return err
		}
		converter = conv
	}

	var results []*pipeline.Result
	var failures int
	for _, doc := range docs {
		result, err := runner.Execute(ctx, pipeline.Options{
			Path:      doc.Path,
			OutputDir: firstNonEmpty(opts.output, cfg.OutputDir),
			StylesDir: firstNonEmpty(opts.styles, cfg.StylesDir),
			PDF:       opts.pdf,
			Refresh:   opts.refresh,
			Logger:    c.Logger,
			Converter: converter,
		})
		if err != nil {
			printError("%s: %v", doc.Name, err)
			failures++
			continue
		}
		results = append(results, result)
	}

	printNewline()
	printBatchSummary(results)
	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(docs))
	}
	printSuccess("Built %d documents", len(results))
	return nil
}

// pickDocument runs the interactive document picker. A nil result means the
// user quit without selecting.
func pickDocument(docs []*source.Doc) (*source.Doc, error) {
	model := NewDocListModel(docs)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(DocListModel)
	if !ok || m.Selected == nil {
		return nil, nil
	}
	return m.Selected.Doc, nil
}

// printBatchSummary prints a table of the completed builds.
func printBatchSummary(results []*pipeline.Result) {
	if len(results) == 0 {
		return
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := iconFresh
		if r.CacheHit {
			status = iconCached
		}
		rows = append(rows, []string{
			r.Doc.Name,
			string(r.Doc.Kind),
			status,
			fmt.Sprintf("%.1f KB", float64(r.Stats.Bytes)/1024),
			r.HTMLPath,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Document", "Kind", "Cache", "Size", "Output").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 && row < len(results) {
				if results[row].CacheHit {
					return styleCached
				}
				return styleComputed
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t.Render())
}
