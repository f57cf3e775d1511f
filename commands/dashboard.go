package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uhppoted/sheets-dashboard/dashboard"
	"github.com/uhppoted/sheets-dashboard/tracker"
)

var DashboardCmd = Dashboard{
	command: defaultCommand(),
	bind:    "",
}

type Dashboard struct {
	command
	bind string
}

func (cmd *Dashboard) Name() string {
	return "dashboard"
}

func (cmd *Dashboard) Description() string {
	return "Serves the growth dashboard for a Google Sheets tracker worksheet"
}

func (cmd *Dashboard) Usage() string {
	return "--credentials <file> --name <spreadsheet> [--bind <address:port>]"
}

func (cmd *Dashboard) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] dashboard [options] --name <spreadsheet>\n", APP)
	fmt.Println()
	fmt.Println("  Serves the dashboard page, the Total chart (/chart.svg) and Prometheus metrics (/metrics).")
	fmt.Println("  The worksheet is fetched afresh for every page request.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s dashboard --credentials "credentials.json" --name "Personal Finance Tracker" --bind 127.0.0.1:8080`+"\n", APP)
	fmt.Println()
}

func (cmd *Dashboard) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("dashboard")

	flagset.StringVar(&cmd.bind, "bind", cmd.bind, fmt.Sprintf("HTTP server address. Defaults to %v (or %v)", DefaultSettings().Bind, ENV_BIND))

	return flagset
}

func (cmd *Dashboard) Execute(args ...any) error {
	ctx, options := parse(args...)

	cmd.debug = options.Debug

	settings, err := cmd.settings()
	if err != nil {
		return err
	}

	if v := strings.TrimSpace(cmd.bind); v != "" {
		settings.Bind = v
	}

	registry := prometheus.NewRegistry()
	s := server{
		settings: settings,
		registry: registry,
		metrics:  newMetrics(registry),
		load: func(ctx context.Context) (*tracker.Table, error) {
			return cmd.load(ctx, settings)
		},
	}

	srv := &http.Server{
		Addr:              settings.Bind,
		Handler:           s.router(),
		ReadHeaderTimeout: 15 * time.Second,
	}

	failed := make(chan error, 1)

	go func() {
		infof("dashboard listening on http://%v", settings.Bind)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			failed <- err
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-interrupt:
		infof("... interrupted")

	case <-ctx.Done():

	case err := <-failed:
		return fmt.Errorf("dashboard server error (%v)", err)
	}

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil {
		warnf("%v", err)
	}

	return nil
}

type server struct {
	settings *Settings
	registry *prometheus.Registry
	metrics  *metrics
	load     func(ctx context.Context) (*tracker.Table, error)
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.index).Methods(http.MethodGet)
	r.HandleFunc("/chart.svg", s.chart).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

func (s *server) fetch(ctx context.Context) (*tracker.Table, error) {
	start := time.Now()
	table, err := s.load(ctx)

	s.metrics.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.fetches.WithLabelValues("error").Inc()
		errorf("%v", err)
	} else {
		s.metrics.fetches.WithLabelValues("ok").Inc()
	}

	return table, err
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	table, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error retrieving worksheet (%v)", err), http.StatusBadGateway)
		return
	}

	page, result, err := dashboard.NewPage(table, s.settings.page())
	if err != nil {
		errorf("%v", err)
		http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
		return
	}

	if result != nil {
		s.metrics.growth.Set(result.PercentChange)
		s.metrics.dailyGrowth.Set(result.AvgDailyGrowth)
		s.metrics.yearlyGrowth.Set(result.AvgYearlyGrowth)
		s.metrics.points.Set(float64(result.Points))
	} else {
		s.metrics.growth.Set(0)
		s.metrics.dailyGrowth.Set(0)
		s.metrics.yearlyGrowth.Set(0)
		s.metrics.points.Set(0)
		warnf("%v", page.Warning)
	}

	var b bytes.Buffer
	if err := dashboard.Render(&b, page); err != nil {
		errorf("%v", err)
		http.Error(w, "Error formatting page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b.Bytes())
}

func (s *server) chart(w http.ResponseWriter, r *http.Request) {
	table, err := s.fetch(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error retrieving worksheet (%v)", err), http.StatusBadGateway)
		return
	}

	rows, values := table.Totals()
	svg, err := dashboard.Chart(s.settings.Columns.Total, rows, values)
	if err != nil {
		errorf("%v", err)
		http.Error(w, "Error plotting chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}
