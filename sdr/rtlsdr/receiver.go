// Package rtlsdr receives composite video with an RTL-SDR dongle.
package rtlsdr

import (
	"context"
	"fmt"
	"io"

	"analogtv/config"
	"analogtv/decoder"
	"analogtv/internal/metrics"
	"analogtv/tuner"

	rtl "github.com/jpoirier/gortlsdr"
	"github.com/rs/zerolog"
)

// SetupDevice opens the first RTL-SDR and tunes it for plan.
func SetupDevice(plan tuner.Plan, cfg *config.Config, logger zerolog.Logger) (*rtl.Context, error) {
	devCount := rtl.GetDeviceCount()
	if devCount == 0 {
		return nil, fmt.Errorf("no RTL-SDR devices found")
	}
	logger.Info().Int("count", devCount).Msg("found RTL-SDR devices, using device 0")

	dongle, err := rtl.Open(0)
	if err != nil {
		return nil, fmt.Errorf("error opening RTL-SDR device: %w", err)
	}

	if err := dongle.SetCenterFreq(plan.FrequencyHz); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetCenterFreq failed: %w", err)
	}
	metrics.TunedFrequency.Set(float64(plan.FrequencyHz))
	logger.Info().Float64("freq_mhz", float64(plan.FrequencyHz)/1e6).Msg("tuned")

	if err := dongle.SetSampleRate(int(cfg.SampleRate)); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetSampleRate failed: %w", err)
	}
	logger.Info().Float64("sample_rate_msps", cfg.SampleRate/1e6).Msg("sample rate set")

	if err := dongle.SetTunerGainMode(true); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetTunerGainMode failed: %w", err)
	}
	if err := dongle.SetTunerGain(cfg.Gain); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("SetTunerGain failed: %w", err)
	}
	logger.Info().Float64("gain_db", float64(cfg.Gain)/10.0).Msg("tuner gain set to manual")

	if err := dongle.ResetBuffer(); err != nil {
		dongle.Close()
		return nil, fmt.Errorf("ResetBuffer failed: %w", err)
	}
	return dongle, nil
}

// Receive reads IQ from dongle, decodes it and writes each newly completed
// frame to sink until ctx is cancelled or a read fails.
func Receive(ctx context.Context, dongle *rtl.Context, dec *decoder.Decoder, sink io.Writer, logger zerolog.Logger) error {
	readBuffer := make([]byte, rtl.DefaultBufLength)
	var lastFrame uint64

	for ctx.Err() == nil {
		bytesRead, err := dongle.ReadSync(readBuffer, len(readBuffer))
		if err != nil {
			return fmt.Errorf("ReadSync failed: %w", err)
		}
		if bytesRead != len(readBuffer) {
			logger.Warn().Int("read", bytesRead).Int("want", len(readBuffer)).Msg("short read")
			continue
		}

		dec.ProcessIQ(readBuffer)
		if n := dec.Frames(); n != lastFrame {
			lastFrame = n
			if _, err := sink.Write(dec.GetDisplayFrame()); err != nil {
				return fmt.Errorf("display closed: %w", err)
			}
		}
	}
	return nil
}
