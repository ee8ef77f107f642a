package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"servo-controller/core/client"
	"servo-controller/core/wifi"

	"github.com/spf13/cobra"
)

// defaultControllerAddr matches the server's default port.
const defaultControllerAddr = "http://localhost:8080"

var (
	// Flags shared by the client commands
	controllerAddr string
	requestTimeout time.Duration
)

// statusCmd queries a running controller.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a running controller's status",
	Long:  `Fetches position, uptime and WiFi signal strength from a running controller.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cl := client.New(controllerAddr, requestTimeout)
		st, err := cl.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to reach controller at %s: %w", controllerAddr, err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println("=== Servo Controller Status ===")
		fmt.Printf("Address: %s\n", controllerAddr)
		fmt.Printf("Status: %s\n", st.Status)
		fmt.Printf("Position: %d°\n", st.Position)
		fmt.Printf("Uptime: %s\n", time.Duration(st.Uptime)*time.Millisecond)
		if st.WifiStrength == wifi.SignalUnknown {
			fmt.Println("WiFi: unknown")
		} else {
			fmt.Printf("WiFi: %d dBm\n", st.WifiStrength)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&controllerAddr, "addr", defaultControllerAddr, "Controller base URL")
	statusCmd.Flags().DurationVar(&requestTimeout, "timeout", time.Second, "Per-request timeout")
	statusCmd.Flags().Bool("json", false, "Output raw JSON")
}
