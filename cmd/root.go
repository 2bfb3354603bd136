package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// NewRootCmd builds the vialsort command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vialsort",
		Short: "Vialsort generates scrambled liquid-sorting puzzle boards",
		Long: `Vialsort builds boards for a liquid-sorting puzzle: one sorted vial per color
plus spare empty vials, shuffled by random pours and normalized so the spare
vials end up empty again.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
