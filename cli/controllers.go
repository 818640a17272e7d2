package cli

import (
	"fmt"
	"strconv"

	"github.com/mobile-next/emubridge/commands"
	"github.com/spf13/cobra"
)

var controllersCmd = &cobra.Command{
	Use:   "controllers",
	Short: "Controller management commands",
	Long:  `Commands for listing connected controllers and configuring their type and device slot.`,
}

var controllersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected controllers",
	Long:  `Lists all currently connected controllers, including virtual ones, with their configured and persisted types.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ControllersCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var controllersSetTypeCmd = &cobra.Command{
	Use:   "set-type [type]",
	Short: "Configure the type of a connected controller",
	Long:  `Changes the configured type of a controller and persists the preference for future connections. Types: pro-controller, joycon-left, joycon-right, joycon-pair, handheld.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.SetTypeRequest{
			ControllerID: controllerId,
			Type:         args[0],
		}

		response := commands.SetTypeCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var controllersSetSlotCmd = &cobra.Command{
	Use:   "set-slot [slot]",
	Short: "Assign a device slot to a connected controller",
	Long:  `Assigns the numeric slot a controller occupies in the native input subsystem.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			response := commands.NewErrorResponse(fmt.Errorf("invalid slot value '%s', must be an integer", args[0]))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		req := commands.SetSlotRequest{
			ControllerID: controllerId,
			Slot:         slot,
		}

		response := commands.SetSlotCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var controllersConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect a virtual controller",
	Long:  `Creates a virtual controller and adds it to the registry, as if a physical controller had connected.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.ConnectVirtualRequest{
			Name: controllerName,
			Type: controllerType,
		}

		response := commands.ConnectVirtualCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var controllersDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect a controller",
	Long:  `Removes a controller from the registry and detaches it from its native device slot.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := commands.DisconnectRequest{
			ControllerID: controllerId,
		}

		response := commands.DisconnectCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(controllersCmd)

	controllersCmd.AddCommand(controllersListCmd)
	controllersCmd.AddCommand(controllersSetTypeCmd)
	controllersCmd.AddCommand(controllersSetSlotCmd)
	controllersCmd.AddCommand(controllersConnectCmd)
	controllersCmd.AddCommand(controllersDisconnectCmd)

	controllersSetTypeCmd.Flags().StringVar(&controllerId, "controller", "", "controller ID (required)")
	controllersSetSlotCmd.Flags().StringVar(&controllerId, "controller", "", "controller ID (required)")
	controllersDisconnectCmd.Flags().StringVar(&controllerId, "controller", "", "controller ID (required)")

	controllersConnectCmd.Flags().StringVar(&controllerName, "name", "", "display name for the virtual controller")
	controllersConnectCmd.Flags().StringVar(&controllerType, "type", "", "controller type (default pro-controller)")
}
