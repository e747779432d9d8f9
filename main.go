package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/oaiiae/contact-book/cli/api"
	"github.com/oaiiae/contact-book/cli/logger"
	"github.com/oaiiae/contact-book/datastores"
)

var (
	title    = "Contact Book"
	version  = "dev"
	revision = "unknown"
	created  = "unknown"
)

// Options for the CLI. Pass e.g. `--port` or set the `SERVICE_PORT` env var.
type Options struct {
	api.ServerOptions
	api.RouterOptions
	logger.Options
}

func buildInfo() api.BuildInfo {
	return api.BuildInfo{Title: title, Version: version, Revision: revision, Created: created}
}

func main() {
	var openapi func() ([]byte, error)

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log, closeLog := logger.New(&options.Options)
		if err := options.LoadEnv(); err != nil {
			log.Error("could not load environment", "err", err)
			os.Exit(1)
		}

		handler, humaAPI := api.NewRouter(&options.RouterOptions, buildInfo(), datastores.NewContactsInmem(), log)
		openapi = func() ([]byte, error) { return json.MarshalIndent(humaAPI.OpenAPI(), "", "  ") }

		srv := api.NewServer(&options.ServerOptions, handler, log)
		hooks.OnStart(func() {
			log.Info("server listening", "addr", srv.Addr)
			err := srv.ListenAndServe()
			if err != http.ErrServerClosed {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
			_ = closeLog()
		})
		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			err := srv.Shutdown(ctx)
			if err != nil {
				log.Warn("could not shutdown the server", "err", err)
			}
		})
	})

	cli.Root().Use = "contact-book"
	cli.Root().Version = version
	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Run: func(_ *cobra.Command, _ []string) {
			b, err := openapi()
			if err != nil {
				slog.Error("could not marshal the OpenAPI document", "err", err)
				os.Exit(1)
			}
			fmt.Println(string(b))
		},
	})

	cli.Run()
}
