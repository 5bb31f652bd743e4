package main

import (
	"github.com/aretw0/byteflip/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the tagged regions of the input without writing output",
	Long:  `Scans the input exactly like run but discards the result. With --strict, an unclosed region is an error.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Strict, _ = cmd.Flags().GetBool("strict")

		_, err := cli.Check(opts, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("in", "i", "", "Input file (default eyeSquare.ino)")
	checkCmd.Flags().BoolP("quiet", "q", false, "Do not print the summary")
	checkCmd.Flags().Bool("strict", false, "Fail when a region is not closed")
}
