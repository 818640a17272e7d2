package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-next/emubridge/commands"
	"github.com/spf13/cobra"
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Virtual controller overlay commands",
	Long:  `Commands for inspecting and editing the on-screen controller overlay layout.`,
}

var overlayLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the current overlay layout",
	Long:  `Lists every overlay widget with its category, bounds and visibility.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.OverlayCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var overlayMoveCmd = &cobra.Command{
	Use:   "move [x,y]",
	Short: "Move an overlay widget",
	Long:  `Repositions an overlay widget. Coordinates are container-relative and should be provided as a single string "x,y"; they are clamped to the container bounds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coordsStr := args[0]
		parts := strings.Split(coordsStr, ",")
		if len(parts) != 2 {
			response := commands.NewErrorResponse(fmt.Errorf("invalid coordinate format. Expected 'x,y', got '%s'", coordsStr))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

		if errX != nil || errY != nil {
			response := commands.NewErrorResponse(fmt.Errorf("invalid coordinate values. x and y must be numbers. Got x='%s', y='%s'", parts[0], parts[1]))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		req := commands.MoveWidgetRequest{
			WidgetID: widgetId,
			X:        x,
			Y:        y,
		}

		response := commands.MoveWidgetCommand(req)
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var overlayShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Make an overlay widget visible",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setWidgetVisible(true)
	},
}

var overlayHideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Hide an overlay widget",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setWidgetVisible(false)
	},
}

func setWidgetVisible(visible bool) error {
	req := commands.SetWidgetVisibleRequest{
		WidgetID: widgetId,
		Visible:  visible,
	}

	response := commands.SetWidgetVisibleCommand(req)
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}

var overlayResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "End any active drag session",
	Long:  `Forcibly resets the drag-edit handler to idle, for use when an edit session is abandoned.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ResetDragCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overlayCmd)

	overlayCmd.AddCommand(overlayLayoutCmd)
	overlayCmd.AddCommand(overlayMoveCmd)
	overlayCmd.AddCommand(overlayShowCmd)
	overlayCmd.AddCommand(overlayHideCmd)
	overlayCmd.AddCommand(overlayResetCmd)

	overlayMoveCmd.Flags().StringVar(&widgetId, "widget", "", "widget ID (required)")
	overlayShowCmd.Flags().StringVar(&widgetId, "widget", "", "widget ID (required)")
	overlayHideCmd.Flags().StringVar(&widgetId, "widget", "", "widget ID (required)")
}
