package cli

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/fennwick/sheetsmith/pkg/config"
	apperrors "github.com/fennwick/sheetsmith/pkg/errors"
	"github.com/fennwick/sheetsmith/pkg/pipeline"
	"github.com/fennwick/sheetsmith/pkg/source"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr   string // listen address
	styles string // stylesheet override directory
}

// serveCommand creates the serve command for browser previews.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview documents in the browser",
		Long: `Serve starts a local HTTP server that renders documents on request.
Documents are rebuilt on every page load, so edits to the JSON files
show up on refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8423", "listen address")
	cmd.Flags().StringVar(&opts.styles, "styles", "", "stylesheet override directory")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	// Previews always rebuild; the cache would hide edits between reloads.
	runner := pipeline.NewRunner(nil, c.Logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", c.handleIndex(cfg))
	r.Get("/documents/{name}", c.handleDocument(cfg, runner, opts))

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printSuccess("Serving documents from %s", cfg.DocumentsDir)
	printDetail("http://%s", opts.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleIndex lists the available documents as links.
func (c *CLI) handleIndex(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paths, err := source.Discover(cfg.DocumentsDir)
		if err != nil {
			http.Error(w, apperrors.UserMessage(err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<!DOCTYPE html><html><head><title>sheetsmith</title></head><body>")
		fmt.Fprint(w, "<h1>Documents</h1><ul>")
		for _, p := range paths {
			name := filepath.Base(p)
			name = name[:len(name)-len(filepath.Ext(name))]
			fmt.Fprintf(w, `<li><a href="/documents/%s">%s</a></li>`, html.EscapeString(name), html.EscapeString(name))
		}
		fmt.Fprint(w, "</ul></body></html>")
	}
}

// handleDocument renders one document on the fly.
func (c *CLI) handleDocument(cfg config.Config, runner *pipeline.Runner, opts *serveOpts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		doc, err := source.Find(cfg.DocumentsDir, name)
		if err != nil {
			status := http.StatusInternalServerError
			if apperrors.Is(err, apperrors.ErrCodeDocumentNotFound) || apperrors.Is(err, apperrors.ErrCodeInvalidName) {
				status = http.StatusNotFound
			}
			http.Error(w, apperrors.UserMessage(err), status)
			return
		}

		page, err := runner.Build(doc, pipeline.Options{
			StylesDir: firstNonEmpty(opts.styles, cfg.StylesDir),
		})
		if err != nil {
			c.Logger.Error("preview build failed", "name", name, "error", err)
			http.Error(w, apperrors.UserMessage(err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
