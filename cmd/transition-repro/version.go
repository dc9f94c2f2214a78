package main

import (
	"fmt"

	"github.com/spf13/cobra"

	transition "github.com/plastic-forks/live-view-transition-inconsistency"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of transition-repro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("transition-repro version %s\n", transition.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
