package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/metrics"
	"git.home.luguber.info/inful/readmegen/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Root        string        `arg:"" optional:"" default:"." type:"path" help:"Project root"`
	MetricsAddr string        `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
	Debounce    time.Duration `default:"300ms" help:"Quiet period after the last change before regenerating"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signalContext()
	defer cancel()

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
		srv := startMetricsServer(w.MetricsAddr, reg)
		defer shutdownServer(srv)
	}

	gen, err := root.generator(w.Root, "", rec)
	if err != nil {
		return err
	}
	watcher, err := watch.New(gen, w.Root, watch.WithDebounce(w.Debounce))
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}

func startMetricsServer(addr string, reg *prom.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("Metrics server stopped", logfields.Error(err))
		}
	}()
	slog.Info("Serving metrics", slog.String("addr", addr))
	return srv
}

func shutdownServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("Metrics server shutdown error", logfields.Error(err))
	}
}
