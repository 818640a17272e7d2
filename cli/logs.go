package cli

import (
	"fmt"

	"github.com/mobile-next/emubridge/commands"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Session log commands",
	Long:  `Commands for the per-run diagnostic log files.`,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log files",
	Long:  `Lists the files in the log directory, from this run and previous ones.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.LogsListCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

var logsWriteCmd = &cobra.Command{
	Use:   "write [message]",
	Short: "Append a line to the session log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")

		response := commands.LogWriteCommand(commands.LogWriteRequest{
			Tag:     tag,
			Message: args[0],
		})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsWriteCmd)

	logsWriteCmd.Flags().String("tag", "cli", "tag to prefix the log line with")
}
