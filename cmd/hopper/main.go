// hopper is a terminal game about charging jumps between floating platforms.
//
// Usage:
//
//	hopper play              - Play a round
//	hopper serve             - Start SSH server for remote play
//	hopper scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hopper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Platform Hopper - Charge and jump between platforms in your terminal",
	Long: `Platform Hopper is a terminal game: hold a charge, release it, and try
to land on the next floating platform. Miss and you fall.

Available commands:
  play     - Play a round
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hopper play
  hopper play --difficulty hard
  hopper serve --ssh :2222
  hopper scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
