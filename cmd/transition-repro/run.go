package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/plastic-forks/live-view-transition-inconsistency/internal/logging"
	"github.com/plastic-forks/live-view-transition-inconsistency/internal/scenario"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario file and print the tag-set timeline",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")

		logger := logging.NewNop()
		if verbose {
			logger = logging.New(slog.LevelDebug)
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		player, err := scenario.NewPlayer(sc, logger)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		events, playErr := player.Play()
		printTimeline(sc, events)
		if playErr != nil {
			fmt.Printf("Error: %v\n", playErr)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default if no command is provided.
	rootCmd.Run = runCmd.Run
	rootCmd.Args = runCmd.Args
}
