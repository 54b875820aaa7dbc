// Package cmd - weights command
package cmd

import (
	"github.com/spf13/cobra"

	"retrofit-calc/core/attribution"
	"retrofit-calc/core/output"
	"retrofit-calc/core/types"
	"retrofit-calc/core/ui"
	"retrofit-calc/internal/config"
)

// weightsCmd prints the device-category weight table
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Print the baseline energy share of each device category",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n := output.NewNumberFormat(config.Get().Output.Locale)

		targets := make(map[types.DeviceCategory]bool, len(attribution.DistributionTargets))
		for _, c := range attribution.DistributionTargets {
			targets[c] = true
		}

		out := ui.NewAutoWriter(cmd.OutOrStdout())
		out.Header("Device categories")

		table := out.NewTable("Category", "Weight", "BMS/EMS share").AlignRight(1)
		for _, c := range types.Categories() {
			share := "-"
			if targets[c] {
				share = n.Percent(c.Weight() / attribution.DistributionWeight() * 100)
			}
			table.AddRow(c.String(), n.Percent(c.Weight()*100), share)
		}
		table.Render()
	},
}
