package cli

import (
	"fmt"
	"strconv"

	"github.com/mobile-next/emubridge/commands"
	"github.com/spf13/cobra"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Display window commands",
	Long:  `Commands for inspecting and tuning the native display window: swap interval, scaling factor, and surface rebinding.`,
}

var displayInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show display window state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.DisplayInfoCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var displaySwapIntervalCmd = &cobra.Command{
	Use:   "swap-interval [interval]",
	Short: "Set the display swap interval",
	Long:  `Sets the number of display refresh intervals between presented frames. If the native side rejects the interval, the current value is kept.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := strconv.Atoi(args[0])
		if err != nil {
			response := commands.NewErrorResponse(fmt.Errorf("invalid interval '%s', must be an integer", args[0]))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		response := commands.SwapIntervalCommand(commands.SwapIntervalRequest{Interval: interval})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var displayScalingCmd = &cobra.Command{
	Use:   "scaling [factor]",
	Short: "Set the display scaling factor",
	Long:  `Sets the resolution scaling factor. Changing it re-enables vsync so the native frame-rate change takes effect.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			response := commands.NewErrorResponse(fmt.Errorf("invalid factor '%s', must be a number", args[0]))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		response := commands.ScalingFactorCommand(commands.ScalingFactorRequest{Factor: factor})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var displayRequeryCmd = &cobra.Command{
	Use:   "requery",
	Short: "Rebind the native window handle",
	Long:  `Re-resolves the native window handle from the surface after the platform destroyed and recreated it, and re-applies the current swap interval.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.RequeryWindowCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(displayCmd)

	displayCmd.AddCommand(displayInfoCmd)
	displayCmd.AddCommand(displaySwapIntervalCmd)
	displayCmd.AddCommand(displayScalingCmd)
	displayCmd.AddCommand(displayRequeryCmd)
}
