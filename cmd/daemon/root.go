package daemon

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/jkroepke/auth0-login/internal/config"
	"github.com/jkroepke/auth0-login/internal/httphandler"
	"github.com/jkroepke/auth0-login/internal/httpserver"
	"github.com/jkroepke/auth0-login/internal/login"
	"github.com/jkroepke/auth0-login/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Execute runs the main program logic of auth0-login.
func Execute(args []string, logWriter io.Writer, version, commit, date string) int {
	return ExecuteContext(context.Background(), args, logWriter, version, commit, date)
}

// ExecuteContext is like [Execute] but also stops once ctx is done.
//
//nolint:cyclop
func ExecuteContext(parentCtx context.Context, args []string, logWriter io.Writer, version, commit, date string) int {
	conf, err := configure(args, logWriter)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		if errors.Is(err, config.ErrVersion) {
			printVersion(logWriter, version, commit, date)

			return 0
		}

		_, _ = fmt.Fprintln(logWriter, err.Error())

		return 1
	}

	logger, err := configureLogger(conf, logWriter)
	if err != nil {
		_, _ = fmt.Fprintln(logWriter, fmt.Errorf("error configure logging: %w", err).Error())

		return 1
	}

	ctx, cancel := context.WithCancelCause(parentCtx)
	defer cancel(nil)

	logger.LogAttrs(ctx, slog.LevelDebug, "config", slog.String("config", conf.String()))

	authorizer, err := login.NewRelyingPartyAuthorizer(logger, conf)
	if err != nil {
		logger.Error(err.Error())

		return 1
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	trigger, err := login.New(logger, conf, authorizer, metrics.New(registry))
	if err != nil {
		logger.Error(err.Error())

		return 1
	}

	httpHandler := httphandler.New(logger, conf, trigger)

	wg := sync.WaitGroup{}
	defer wg.Wait()

	if conf.Debug.Pprof || conf.Debug.Metrics {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := setupDebugListener(ctx, logger, conf, registry); err != nil {
				cancel(err)
			}
		}()
	}

	server := httpserver.NewHTTPServer(httpserver.ServerNameDefault, logger, conf.HTTP, httpHandler)

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := server.Listen(ctx); err != nil {
			cancel(fmt.Errorf("error http listener: %w", err))

			return
		}

		cancel(nil)
	}()

	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM)

	defer signal.Stop(termCh)

	logger.LogAttrs(ctx, slog.LevelInfo,
		"auth0-login started with base url "+conf.HTTP.BaseURL.String(),
		slog.String("domain", conf.Auth0.Domain),
		slog.String("audience", trigger.Audience()),
	)

	for {
		select {
		case <-ctx.Done():
			err = context.Cause(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error(err.Error())

				return 1
			}

			return 0
		case sig := <-termCh:
			logger.Info("receiving signal: " + sig.String())

			switch sig {
			case syscall.SIGHUP:
				if err = server.Reload(); err != nil {
					cancel(fmt.Errorf("error reloading http server: %w", err))
				}
			default:
				cancel(nil)
			}
		}
	}
}

func setupDebugListener(ctx context.Context, logger *slog.Logger, conf config.Config, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()

	if conf.Debug.Pprof {
		mux.Handle("GET /", http.RedirectHandler("/debug/pprof/", http.StatusTemporaryRedirect))
		mux.HandleFunc("GET /debug/pprof/", pprof.Index)
		mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	}

	if conf.Debug.Metrics {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelError),
		}))
	}

	server := httpserver.NewHTTPServer(httpserver.ServerNameDebug, logger, config.HTTP{Listen: conf.Debug.Listen}, mux)

	if err := server.Listen(ctx); err != nil {
		return fmt.Errorf("error debug http listener: %w", err)
	}

	return nil
}

// configure parses the command line arguments and loads the configuration.
func configure(args []string, logWriter io.Writer) (config.Config, error) {
	conf, err := config.New(args, logWriter)
	if err != nil {
		return config.Config{}, fmt.Errorf("configuration parse error: %w", err)
	}

	if err = config.Validate(conf); err != nil {
		return config.Config{}, fmt.Errorf("configuration validation error: %w", err)
	}

	return conf, nil
}

func configureLogger(conf config.Config, writer io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     conf.Log.Level,
	}

	switch conf.Log.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(writer, opts)), nil
	case "console":
		return slog.New(slog.NewTextHandler(writer, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", conf.Log.Format)
	}
}

func printVersion(writer io.Writer, version, commit, date string) {
	if version == "dev" {
		if buildInfo, ok := debug.ReadBuildInfo(); ok {
			_, _ = fmt.Fprintf(writer, "version: %s\ngo: %s\n", buildInfo.Main.Version, buildInfo.GoVersion)

			return
		}
	}

	_, _ = fmt.Fprintf(writer, "version: %s\ncommit: %s\ndate: %s\ngo: %s\n", version, commit, date, runtime.Version())
}
