package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/byteflip"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of byteflip",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "byteflip version %s\n", strings.TrimSpace(byteflip.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
