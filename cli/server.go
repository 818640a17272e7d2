package cli

import (
	"fmt"

	"github.com/mobile-next/emubridge/daemon"
	"github.com/mobile-next/emubridge/server"
	"github.com/mobile-next/emubridge/utils"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const defaultServerAddress = "localhost:12000"

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the emubridge control server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the emubridge server",
	Long:  `Starts the emubridge control server, serving JSON-RPC over HTTP and WebSocket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr := cmd.Flag("listen").Value.String()
		if listenAddr == "" {
			listenAddr = defaultServerAddress
		}

		// GetBool cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		isDaemon, _ := cmd.Flags().GetBool("daemon")
		requireAuth, _ := cmd.Flags().GetBool("auth")

		var authToken string
		if requireAuth {
			token, err := keyring.Get(keyringService, keyringUser)
			if err != nil {
				return fmt.Errorf("--auth requires a token; set one with 'emubridge auth set'")
			}
			authToken = token
		}

		if isDaemon && !daemon.IsChild() {
			if err := utils.CheckListenAddr(listenAddr); err != nil {
				return err
			}

			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		return server.StartServer(server.Options{
			Addr:       listenAddr,
			EnableCORS: enableCORS,
			AuthToken:  authToken,
		})
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemonized emubridge server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = defaultServerAddress
		}

		err := daemon.KillServer(addr)
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12000' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")
	serverStartCmd.Flags().Bool("auth", false, "Require the stored auth token on every request")

	// server kill flags
	serverKillCmd.Flags().String("listen", "", fmt.Sprintf("Address of server to kill (default: %s)", defaultServerAddress))
}
