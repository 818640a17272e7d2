package cli

import (
	"fmt"

	"github.com/mobile-next/emubridge/commands"
	"github.com/spf13/cobra"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Native core commands",
	Long:  `Commands for inspecting the native emulation core: run state, firmware, user profiles and cheats.`,
}

var systemInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show native core state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.SystemInfoCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var systemProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List user profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ProfilesCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var firmwareCmd = &cobra.Command{
	Use:   "firmware",
	Short: "Firmware commands",
}

var firmwareInstallCmd = &cobra.Command{
	Use:   "install [path]",
	Short: "Install a firmware package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.FirmwareInstallCommand(commands.FirmwareInstallRequest{Path: args[0]})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var firmwareVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify installed firmware",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.FirmwareVerifyCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var cheatsCmd = &cobra.Command{
	Use:   "cheats",
	Short: "Cheat management commands",
}

var cheatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cheats for a title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.CheatsCommand(titleId)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var cheatsEnableCmd = &cobra.Command{
	Use:   "enable [name]",
	Short: "Enable a cheat for a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCheat(args[0], true)
	},
}

var cheatsDisableCmd = &cobra.Command{
	Use:   "disable [name]",
	Short: "Disable a cheat for a title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCheat(args[0], false)
	},
}

func setCheat(name string, enabled bool) error {
	response := commands.SetCheatCommand(commands.CheatRequest{
		TitleID: titleId,
		Name:    name,
		Enabled: enabled,
	})
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(firmwareCmd)
	rootCmd.AddCommand(cheatsCmd)

	systemCmd.AddCommand(systemInfoCmd)
	systemCmd.AddCommand(systemProfilesCmd)

	firmwareCmd.AddCommand(firmwareInstallCmd)
	firmwareCmd.AddCommand(firmwareVerifyCmd)

	cheatsCmd.AddCommand(cheatsListCmd)
	cheatsCmd.AddCommand(cheatsEnableCmd)
	cheatsCmd.AddCommand(cheatsDisableCmd)

	cheatsListCmd.Flags().StringVar(&titleId, "title", "", "title ID (required)")
	cheatsEnableCmd.Flags().StringVar(&titleId, "title", "", "title ID (required)")
	cheatsDisableCmd.Flags().StringVar(&titleId, "title", "", "title ID (required)")
}
