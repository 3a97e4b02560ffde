// dragon is a Flappy Bird style arcade game for the terminal.
//
// Usage:
//
//	dragon          - Play
//	dragon keys     - Show the key bindings
//
// Tuning is read from ~/.dragon/configs/dragon.yaml or ./configs/dragon.yaml
// when present. Logs go to the user cache directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the walls in your terminal",
	Long: `Flappy Dragon is a terminal arcade game. Flap with space to keep the
dragon in the air and steer it through the gaps between walls. Every wall
cleared scores a point, and the gaps shrink as the score grows.

Examples:
  dragon
  dragon keys`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
