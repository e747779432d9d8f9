package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
	"github.com/joeshaw/envdecode"

	"github.com/oaiiae/contact-book/datastores"
	"github.com/oaiiae/contact-book/handlers"
	"github.com/oaiiae/contact-book/router"
)

const defaultPort = "3000"

type ServerOptions struct {
	Host              string        `short:"H" doc:"host to listen on"                                default:""`
	Port              string        `short:"p" doc:"port to listen on, falls back to $PORT then 3000" default:""`
	ReadHeaderTimeout time.Duration `          doc:"time allowed to read request headers"             default:"15s"`
}

// environment is the process configuration read with [envdecode].
type environment struct {
	Port string `env:"PORT,default=3000"`
}

// LoadEnv fills the options left unset from the environment.
func (o *ServerOptions) LoadEnv() error {
	if o.Port != "" {
		return nil
	}

	var env environment
	err := envdecode.Decode(&env)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return fmt.Errorf("decode environment: %w", err)
	}

	o.Port = env.Port
	if o.Port == "" {
		o.Port = defaultPort
	}
	return nil
}

func (o *ServerOptions) Addr() string { return o.Host + ":" + o.Port }

func NewServer(options *ServerOptions, handler http.Handler, logger *slog.Logger) *http.Server {
	return &http.Server{
		Addr:              options.Addr(),
		ReadHeaderTimeout: options.ReadHeaderTimeout,
		Handler:           handler,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

type RouterOptions struct {
	EndpointsPrefix string `doc:"mount endpoints at a prefix" default:""`
}

type BuildInfo struct {
	Title    string
	Version  string
	Revision string
	Created  string
}

// NewRouter wires the contacts API over store.
func NewRouter(
	options *RouterOptions,
	build BuildInfo,
	store *datastores.ContactsInmem,
	logger *slog.Logger,
) (http.Handler, huma.API) {
	buildinfoMetric := joinQuote("build_info{goversion=", runtime.Version(),
		",title=", build.Title,
		",version=", build.Version,
		",revision=", build.Revision,
		",created=", build.Created,
		"} 1\n")

	metriks := metrics.NewSet()
	metriks.NewGauge("contacts_stored", func() float64 { return float64(store.Len()) })

	return router.New(build.Title, build.Version,
		func(_ http.ResponseWriter, _ *http.Request) {},
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, buildinfoMetric)
			metriks.WritePrometheus(w)
			metrics.WriteProcessMetrics(w)
		},
		router.OptUseMiddleware(
			ctxlog{}.loggerMiddleware(logger),
			meterRequests(metriks),
			ctxlog{}.recoverMiddleware(logger),
		),
		router.OptGroup(options.EndpointsPrefix,
			router.OptAutoRegister(&handlers.Contacts{
				Store:        store,
				ErrorHandler: ctxlog{}.errorHandler(logger),
			}),
		),
	)
}

// joinQuote is [strings.Join] with " as separator.
func joinQuote(elems ...string) string { return strings.Join(elems, `"`) }

// joinSpace is [strings.Join] with space as separator.
func joinSpace(elems ...string) string { return strings.Join(elems, ` `) }
