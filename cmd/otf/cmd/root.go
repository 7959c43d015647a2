package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
)

// NewRootCmd builds the otf command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "otf",
		Short: "OpenTraceFootprints - parametric KiCad footprint generator",
		Long: `OpenTraceFootprints (otf) generates KiCad footprints from parameters
and inspects the generated text.

Examples:
  otf generate usbc --at "(at 0 0 0)" --net A=GND --net F=GND
  otf generate usbc --params usbc.fpp --reverse -o usbc_rev.kicad_mod
  otf generate usbc --params usbc.fpp | otf inspect - --check`,
		Version:       "0.9.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			footprint.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = footprint.Logger().Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
