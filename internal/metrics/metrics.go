// Package metrics exposes prometheus instrumentation for the bot.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Metrics groups the bot's collectors
type Metrics struct {
	updates             *prometheus.CounterVec
	handlerDuration     *prometheus.HistogramVec
	translations        *prometheus.CounterVec
	translationDuration *prometheus.HistogramVec
	sessionsEvicted     prometheus.Counter
}

// New creates collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tarjimon_updates_total",
				Help: "Total number of handled Telegram updates",
			},
			[]string{"kind", "status"},
		),
		handlerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tarjimon_handler_duration_seconds",
				Help:    "Duration of update handling in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"kind"},
		),
		translations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tarjimon_translations_total",
				Help: "Total number of translate procedures by outcome",
			},
			[]string{"target", "outcome"},
		),
		translationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tarjimon_translation_duration_seconds",
				Help:    "Duration of translate procedures in seconds",
				Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"outcome"},
		),
		sessionsEvicted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tarjimon_sessions_evicted_total",
				Help: "Total number of idle sessions removed",
			},
		),
	}

	reg.MustRegister(m.updates, m.handlerDuration, m.translations, m.translationDuration, m.sessionsEvicted)
	return m
}

// NewNop returns metrics registered on a private registry
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// ObserveUpdate records one handled update
func (m *Metrics) ObserveUpdate(kind string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.updates.WithLabelValues(kind, status).Inc()
	m.handlerDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveTranslation records one translate procedure
func (m *Metrics) ObserveTranslation(target, outcome string, d time.Duration) {
	m.translations.WithLabelValues(target, outcome).Inc()
	m.translationDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// AddEvicted records removed idle sessions
func (m *Metrics) AddEvicted(n int64) {
	if n > 0 {
		m.sessionsEvicted.Add(float64(n))
	}
}

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
