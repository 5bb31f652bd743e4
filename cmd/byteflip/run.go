package main

import (
	"github.com/aretw0/byteflip/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Flip the input file into the output file",
	Long:  `Reads the input (default eyeSquare.ino) and writes the flipped copy (default flipped.ino, overwritten).`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Output, _ = cmd.Flags().GetString("out")
		opts.MetricsTextfile, _ = cmd.Flags().GetString("metrics-textfile")

		_, err := cli.Execute(opts, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("in", "i", "", "Input file (default eyeSquare.ino)")
	runCmd.Flags().StringP("out", "o", "", "Output file (default flipped.ino)")
	runCmd.Flags().String("metrics-textfile", "", "Write Prometheus counters to this file after the run")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the run summary")

	// 'run' is the default when no command is provided.
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
}
