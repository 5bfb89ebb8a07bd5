// Command rtltv receives analog TV with an RTL-SDR and shows it with FFplay.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"analogtv/config"
	"analogtv/decoder"
	"analogtv/display"
	"analogtv/internal/logging"
	"analogtv/internal/metrics"
	"analogtv/internal/ui"
	"analogtv/sdr/rtlsdr"
	"analogtv/tuner"

	"github.com/spf13/cobra"
)

var cfg = config.NewReceive()

var rootCmd = &cobra.Command{
	Use:   "rtltv",
	Short: "Receive analog TV with an RTL-SDR dongle.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(os.Stderr, cfg.LogLevel)
		return cfg.Finalize()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return receive(cmd.Context())
	},
}

func receive(parent context.Context) error {
	logger := logging.Component("rtltv")
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := cfg.Settings(ctx, cfg.Authorizer())
	if err != nil {
		return err
	}
	plan, err := tuner.Resolve(settings, tuner.SDRCapabilities)
	if err != nil {
		return err
	}
	fmt.Println(ui.RenderPlan("Receiving", plan))

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr, logging.Component("metrics")); err != nil {
				logger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	dongle, err := rtlsdr.SetupDevice(plan, cfg, logging.Component("sdr"))
	if err != nil {
		return err
	}
	defer dongle.Close()

	player, err := display.Start(plan.Timing, logging.Component("display"))
	if err != nil {
		return fmt.Errorf("failed to start FFplay: %w", err)
	}
	defer player.Stop()

	dec := decoder.New(plan.Timing, cfg.SampleRate, plan.PositiveVideo(), logging.Component("decoder"))
	logger.Info().Stringer("plan", plan).Msg("starting stream processing")
	return rtlsdr.Receive(ctx, dongle, dec, player, logger)
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
