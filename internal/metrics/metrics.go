// Package metrics exposes Prometheus counters for the transmit and receive paths.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	FramesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analogtv_frames_generated_total",
			Help: "Total number of composite frames generated",
		},
		[]string{"signal"},
	)

	SamplesTransmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analogtv_samples_transmitted_total",
			Help: "Total number of IQ samples handed to the transmitter",
		},
	)

	FramesDecoded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analogtv_frames_decoded_total",
			Help: "Total number of frames completed by the receiver",
		},
	)

	VSyncLocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analogtv_vsync_locks_total",
			Help: "Total number of confirmed vertical sync sequences",
		},
	)

	CaptureErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analogtv_capture_errors_total",
			Help: "Total number of video source read failures",
		},
	)

	TunedFrequency = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analogtv_tuned_frequency_hz",
			Help: "Frequency the SDR is currently tuned to",
		},
	)
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
