package main

import (
	"fmt"

	"analogtv/internal/ui"
	"analogtv/preset"
	"analogtv/sdr/hackrf"
	"analogtv/tuner"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List signal types, SIF standards and the channels of the presets file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fmt.Println(ui.RenderEnumerants())

		if cfg.PresetsFile == "" {
			return nil
		}
		m, err := preset.Load(cfg.PresetsFile)
		if err != nil {
			return err
		}
		auth := cfg.Authorizer()
		for _, c := range m.Channels {
			settings, err := m.Build(cmd.Context(), auth, c.Name)
			if err != nil {
				return err
			}
			plan, err := tuner.Resolve(settings, hackrf.Capabilities)
			if err != nil {
				fmt.Printf("%s: %v\n", c.Name, err)
				continue
			}
			fmt.Println(ui.RenderPlan(c.Name, plan))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
