package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-listgen/internal/prompt"
	"github.com/goliatone/go-listgen/pkg/model"
	"github.com/goliatone/go-listgen/pkg/server"
)

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "listgen",
		Short:         "Render list views of a dataset as HTML or text tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (defaults to ./listgen.yaml)")
	flags.String("dataset", "", "dataset file (YAML or JSON)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json, logfmt)")

	addRender(cmd, a)
	addServe(cmd, a)
	addExport(cmd, a)
	return cmd
}

func addRender(topLevel *cobra.Command, a *app) {
	var (
		modelName   string
		output      string
		related     string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a model listing",
		Example: `
listgen render --dataset garden.yaml --model genus --role admin --document
listgen render --dataset garden.yaml --model genus --related 1:species_list --renderer terminal
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ds, err := a.dataset()
			if err != nil {
				return err
			}

			opts := a.cfg.RenderOptions()
			sel := prompt.Selection{Model: modelName, Role: opts.Viewer.Role}
			if related != "" {
				if sel.RecordID, sel.Attribute, err = parseRelated(related); err != nil {
					return err
				}
			}
			if interactive {
				if sel, err = prompt.ChooseListing(ctx, a.driver, ds, sel); err != nil {
					return err
				}
				opts.Viewer = model.Viewer{Role: sel.Role}
			}

			var listing model.Listing
			switch {
			case sel.Model == "":
				listing = ds.Index()
			case sel.Related():
				listing, err = ds.RelatedListing(sel.Model, sel.RecordID, sel.Attribute)
			default:
				listing, err = ds.Listing(sel.Model)
			}
			if err != nil {
				return err
			}

			registry, err := a.registry(output == "" && a.out == os.Stdout)
			if err != nil {
				return err
			}
			renderer, err := registry.Get(a.cfg.Renderer)
			if err != nil {
				return err
			}
			body, err := renderer.Render(ctx, listing, opts)
			if err != nil {
				return err
			}
			a.logger.Debugf("rendered %q with %s", listing.Title, renderer.Name())
			return a.writeOutput(output, body)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&modelName, "model", "", "model to list (empty lists the models)")
	flags.String("role", "", "viewer role (admin unlocks admin actions)")
	flags.String("renderer", "", "renderer name (vanilla, terminal)")
	flags.Bool("document", false, "wrap HTML output in a full page")
	flags.Bool("align", false, "pad rows lacking action cells")
	flags.Int("truncate", 0, "cell truncation length")
	flags.StringVar(&output, "output", "", "output file (stdout if empty)")
	flags.StringVar(&related, "related", "", "render a one-to-many attribute as <id>:<attribute>")
	flags.BoolVar(&interactive, "interactive", false, "choose model, role and attribute interactively")

	topLevel.AddCommand(cmd)
}

func addServe(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dataset listings over HTTP",
		Example: `
listgen serve --dataset garden.yaml --addr :8080
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler, err := a.handler()
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				a.logger.Infof("listening on %s (prefix %q)", a.cfg.Addr, handler.Prefix()+"/")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				a.logger.Infof("shutting down")
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "", "listen address")
	flags.String("url-prefix", "", "route prefix (defaults to the dataset url_prefix)")
	flags.String("role-header", "", "request header carrying the viewer role")
	flags.Bool("document", false, "serve full HTML pages")
	flags.Bool("align", false, "pad rows lacking action cells")
	flags.Int("truncate", 0, "cell truncation length")

	topLevel.AddCommand(cmd)
}

func (a *app) handler() (*server.Handler, error) {
	ds, err := a.dataset()
	if err != nil {
		return nil, err
	}
	registry, err := a.registry(false)
	if err != nil {
		return nil, err
	}
	return server.NewHandler(ds, registry,
		server.WithURLPrefix(a.cfg.URLPrefix),
		server.WithDefaultRenderer(a.cfg.Renderer),
		server.WithViewer(server.HeaderViewer(a.cfg.RoleHeader)),
		server.WithLogger(a.logger),
		server.WithRenderOptions(a.cfg.RenderOptions()),
	)
}

func addExport(topLevel *cobra.Command, a *app) {
	var (
		modelName string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a model as CSV, or every model as a zip archive",
		Example: `
listgen export --dataset garden.yaml --model genus --output genus_export.csv
listgen export --dataset garden.yaml --output garden.zip
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if modelName == "" {
				err = ds.WriteZip(&buf, time.Now())
			} else {
				err = ds.WriteCSV(&buf, modelName)
			}
			if err != nil {
				return err
			}
			return a.writeOutput(output, buf.Bytes())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&modelName, "model", "", "model to export (empty exports every model as zip)")
	flags.StringVar(&output, "output", "", "output file (stdout if empty)")

	topLevel.AddCommand(cmd)
}
