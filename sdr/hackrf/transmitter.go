// Package hackrf drives a HackRF One as a composite video transmitter.
package hackrf

import (
	"context"
	"fmt"

	"analogtv/config"
	"analogtv/internal/metrics"
	"analogtv/sdr"
	"analogtv/tuner"
	"analogtv/video"

	"github.com/rs/zerolog"
	"github.com/samuel/go-hackrf/hackrf"
)

const filterTaps = 63

// Capabilities of the HackRF transmit path: every concrete signal type the
// encoder knows and every SIF standard.
var Capabilities = tuner.SDRCapabilities

// Open initializes libhackrf and opens the first device. The returned close
// function releases both.
func Open() (*hackrf.Device, func(), error) {
	if err := hackrf.Init(); err != nil {
		return nil, nil, fmt.Errorf("hackrf.Init() failed: %w", err)
	}
	dev, err := hackrf.Open()
	if err != nil {
		hackrf.Exit()
		return nil, nil, fmt.Errorf("hackrf.Open() failed: %w", err)
	}
	return dev, func() {
		dev.Close()
		hackrf.Exit()
	}, nil
}

// Transmit configures an open HackRF device for plan and streams std until ctx
// is cancelled.
func Transmit(ctx context.Context, dev *hackrf.Device, plan tuner.Plan, cfg *config.Config, std video.Standard, logger zerolog.Logger) error {
	if err := dev.SetFreq(uint64(plan.FrequencyHz)); err != nil {
		return fmt.Errorf("SetFreq failed: %w", err)
	}
	if err := dev.SetSampleRate(cfg.SampleRate); err != nil {
		return fmt.Errorf("SetSampleRate failed: %w", err)
	}
	if err := dev.SetTXVGAGain(cfg.Gain); err != nil {
		return fmt.Errorf("SetTXVGAGain failed: %w", err)
	}
	if err := dev.SetAmpEnable(false); err != nil {
		return fmt.Errorf("SetAmpEnable failed: %w", err)
	}
	metrics.TunedFrequency.Set(float64(plan.FrequencyHz))

	taps := sdr.NewLowPassFilterTaps(filterTaps, cfg.Bandwidth*1_000_000, cfg.SampleRate)
	mod := sdr.NewModulator(std, plan.PositiveVideo(), taps)

	event := logger.Info().
		Str("signal", plan.Signal.String()).
		Float64("freq_mhz", float64(plan.FrequencyHz)/1e6).
		Float64("bw_mhz", cfg.Bandwidth).
		Float64("sample_rate_msps", cfg.SampleRate/1e6).
		Bool("positive_video", plan.PositiveVideo())
	if plan.Sound != nil {
		primary, secondary := plan.Sound.Frequencies(float64(plan.FrequencyHz))
		event = event.Str("sif", plan.Sound.Standard.String()).
			Float64("sound_mhz", primary/1e6).
			Float64("sound2_mhz", secondary/1e6)
	}
	event.Msg("starting transmission")

	// StartTX is non-blocking and returns immediately.
	if err := dev.StartTX(func(buf []byte) error {
		mod.Fill(buf)
		return nil
	}); err != nil {
		return fmt.Errorf("StartTX failed: %w", err)
	}

	<-ctx.Done()
	logger.Info().Msg("stopping transmission")
	if err := dev.StopTX(); err != nil {
		return fmt.Errorf("StopTX failed: %w", err)
	}
	return nil
}
