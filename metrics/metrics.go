// Package metrics collects print run statistics in a Prometheus registry.
// A CLI run is short-lived, so the registry is written to a textfile for the
// node_exporter textfile collector instead of being scraped.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"hey-sweetie-print/models"
)

type Registry struct {
	reg            *prometheus.Registry
	RowsRead       prometheus.Counter
	Orders         *prometheus.CounterVec
	Selected       prometheus.Counter
	Entries        prometheus.Counter
	Messages       prometheus.Counter
	Pages          *prometheus.CounterVec
	RenderSec      *prometheus.HistogramVec
	LastRunSuccess prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	rowsRead := prometheus.NewCounter(prometheus.CounterOpts{Name: "sweetie_rows_read_total"})
	ordersByOrigin := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "sweetie_orders_total"}, []string{"origin"})
	selected := prometheus.NewCounter(prometheus.CounterOpts{Name: "sweetie_orders_selected_total"})
	entries := prometheus.NewCounter(prometheus.CounterOpts{Name: "sweetie_entries_total"})
	messages := prometheus.NewCounter(prometheus.CounterOpts{Name: "sweetie_messages_total"})
	pages := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "sweetie_pages_rendered_total"}, []string{"document"})
	renderSec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sweetie_render_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"document"})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{Name: "sweetie_last_run_success"})

	r.MustRegister(rowsRead, ordersByOrigin, selected, entries, messages, pages, renderSec, lastRun)
	return &Registry{
		reg:            r,
		RowsRead:       rowsRead,
		Orders:         ordersByOrigin,
		Selected:       selected,
		Entries:        entries,
		Messages:       messages,
		Pages:          pages,
		RenderSec:      renderSec,
		LastRunSuccess: lastRun,
	}
}

// ObserveSummary records the totals of a finished run
func (r *Registry) ObserveSummary(s models.PrintSummary) {
	r.RowsRead.Add(float64(s.RowsRead))
	for _, origin := range models.Origins {
		r.Orders.WithLabelValues(string(origin)).Add(float64(s.OrdersByOrigin[origin]))
	}
	r.Selected.Add(float64(s.Selected))
	r.Entries.Add(float64(s.Entries))
	r.Messages.Add(float64(s.MessageCount))
	r.LastRunSuccess.Set(1)
}

// ObserveRender records one rendered document
func (r *Registry) ObserveRender(document string, seconds float64, pages int) {
	r.RenderSec.WithLabelValues(document).Observe(seconds)
	r.Pages.WithLabelValues(document).Add(float64(pages))
}

// MarkFailed flags the run as failed
func (r *Registry) MarkFailed() {
	r.LastRunSuccess.Set(0)
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
