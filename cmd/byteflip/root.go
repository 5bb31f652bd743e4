package main

import (
	"fmt"
	"os"

	"github.com/aretw0/byteflip/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "byteflip",
	Short: "Bit-reverse hex byte literals inside tagged regions of a source file",
	Long: `byteflip copies a source file line by line. Between a line containing
"byteflip-begin" and a line containing "byteflip-end", every 0xNN literal is
replaced by its bit-reversed value (0x01 becomes 0x80). The tag lines and
everything outside the region are copied unchanged.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory that relative file names resolve against")
	rootCmd.PersistentFlags().String("config", "", "Config file (default <dir>/.byteflip.yaml if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// runOptions collects the flags shared by run and check.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	input, _ := cmd.Flags().GetString("in")
	quiet, _ := cmd.Flags().GetBool("quiet")

	return cli.RunOptions{
		Dir:        dir,
		ConfigPath: configPath,
		Input:      input,
		Debug:      debug,
		Quiet:      quiet,
	}
}
