package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transition-repro",
	Short: "transition-repro replays class-transition scenarios on a virtual clock",
	Long: `transition-repro executes scripted transition scenarios against the
scheduling engine and prints the observed tag-set timeline, frame by frame.
It exists to make transition timing bugs reproducible without a browser.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}
