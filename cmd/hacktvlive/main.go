// Command hacktvlive transmits live composite video with a HackRF One.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"analogtv/config"
	"analogtv/internal/logging"
	"analogtv/internal/metrics"
	"analogtv/internal/ui"
	"analogtv/sdr/hackrf"
	"analogtv/source"
	"analogtv/tuner"
	"analogtv/video"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var cfg = config.NewTransmit()

var rootCmd = &cobra.Command{
	Use:   "hacktvlive",
	Short: "Transmit live analog TV (PAL, NTSC, SECAM) with a HackRF One.",
	Long: `hacktvlive encodes a webcam or SMPTE colour bars as composite video for the ` +
		`selected analog signal type and SIF sound standard, and transmits it with a HackRF One.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, cfg.LogLevel)
		return cfg.Finalize()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return transmit(cmd.Context())
	},
}

func transmit(parent context.Context) error {
	logger := logging.Component("hacktvlive")
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Build the frontend settings and let the hardware side validate them
	settings, err := cfg.Settings(ctx, cfg.Authorizer())
	if err != nil {
		return err
	}
	plan, err := tuner.Resolve(settings, hackrf.Capabilities)
	if err != nil {
		return err
	}
	logger.Info().Stringer("settings", settings).Stringer("plan", plan).Msg("settings resolved")

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, logging.Component("metrics")); err != nil {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	// 2. Open the device (lifecycle is managed here)
	dev, closeDev, err := hackrf.Open()
	if err != nil {
		return err
	}
	defer closeDev()

	// 3. Set up the video source (test pattern or FFmpeg)
	std := video.NewEncoder(plan.Timing, cfg.SampleRate)
	if cfg.Test {
		logger.Info().Msg("test mode: SMPTE color bars will be transmitted")
		std.FillTestPattern()
		go regenerate(ctx, std)
	} else {
		ffmpegCmd, err := source.StartFFmpegCapture(cfg, std, logging.Component("source"))
		if err != nil {
			return fmt.Errorf("failed to start video source: %w", err)
		}
		defer func() {
			if ffmpegCmd.Process != nil {
				_ = ffmpegCmd.Process.Kill()
			}
		}()
	}

	logger.Info().Msg("generating initial frame")
	std.LockFrame()
	std.GenerateFullFrame()
	std.UnlockFrame()

	// 4. Stream until interrupted or the device fails
	tx := func(ctx context.Context) error {
		return hackrf.Transmit(ctx, dev, plan, cfg, std, logging.Component("sdr"))
	}
	view := func(ctx context.Context) error {
		fmt.Println(ui.RenderPlan("Transmitting", plan))
		logger.Info().Msg("transmission is live, press Ctrl+C to stop")
		<-ctx.Done()
		return nil
	}
	if cfg.TUI && isatty.IsTerminal(os.Stdout.Fd()) {
		view = func(ctx context.Context) error {
			return ui.RunStatus(ctx, ui.NewStatus(plan, std.Frames))
		}
	}

	err = ui.Live(ctx, tx, view)
	logger.Info().Msg("shutting down")
	return err
}

// regenerate redraws the test pattern at the signal's frame rate.
func regenerate(ctx context.Context, std *video.Encoder) {
	frameTick := time.Duration(float64(time.Second) / std.Timing().FrameRate)
	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			std.LockFrame()
			std.GenerateFullFrame()
			std.UnlockFrame()
		}
	}
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// flag defaults read the environment, so .env goes first
	cfg.BindFlags(rootCmd.PersistentFlags())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
