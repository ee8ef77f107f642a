package cmd

import (
	"fmt"
	"time"

	"servo-controller/core/client"

	"github.com/spf13/cobra"
)

var setPosition int

// setCmd sends a single position command to a running controller.
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Command a running controller to a position",
	Long: `Sends one position command and reports the angle the controller applied.
Out-of-range values are clamped before sending.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cl := client.New(controllerAddr, requestTimeout)
		applied, err := cl.SetPosition(cmd.Context(), setPosition)
		if err != nil {
			return fmt.Errorf("failed to command controller at %s: %w", controllerAddr, err)
		}

		fmt.Printf("Servo moved to %d°\n", applied)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(setCmd)

	setCmd.Flags().IntVar(&setPosition, "position", 90, "Target angle in degrees (0-180)")
	setCmd.Flags().StringVar(&controllerAddr, "addr", defaultControllerAddr, "Controller base URL")
	setCmd.Flags().DurationVar(&requestTimeout, "timeout", time.Second, "Per-request timeout")
	_ = setCmd.MarkFlagRequired("position")
}
