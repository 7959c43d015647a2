package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/kicad/module"
)

func newInspectCmd() *cobra.Command {
	var check bool

	inspectCmd := &cobra.Command{
		Use:   "inspect <footprint_file>",
		Short: "Show footprint information",
		Long: `Reads a footprint in KiCad module format and prints its side, texts
and pads. Use "-" to read from stdin.

With --check, also verifies that every side-qualified layer matches the
mounting side and that no tstamp is used twice; violations make the
command fail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], check)
		},
	}

	inspectCmd.Flags().BoolVar(&check, "check", false, "verify side consistency and unique tstamps")
	return inspectCmd
}

func runInspect(cmd *cobra.Command, filename string, check bool) error {
	var (
		m   *module.Module
		err error
	)
	if filename == "-" {
		m, err = module.Parse(cmd.InOrStdin())
	} else {
		m, err = module.ParseFile(filename)
	}
	if err != nil {
		return fmt.Errorf("error parsing footprint: %w", err)
	}

	out := cmd.OutOrStdout()
	showModule(out, m)

	if !check {
		return nil
	}

	violations := module.Check(m)
	if len(violations) == 0 {
		fmt.Fprintln(out, "\nCheck: OK")
		return nil
	}

	fmt.Fprintf(out, "\nCheck: %d violation(s)\n", len(violations))
	for _, v := range violations {
		fmt.Fprintf(out, "  %s\n", v)
	}
	return fmt.Errorf("%s: %d violation(s)", filename, len(violations))
}

func showModule(out io.Writer, m *module.Module) {
	side := "unknown"
	if s, ok := m.Side(); ok {
		side = s.String()
	}

	fmt.Fprintf(out, "Footprint: %s\n", m.Name)
	fmt.Fprintf(out, "Side: %s (%s)\n", side, m.Layer)
	fmt.Fprintf(out, "Reference: %s\n", m.Reference)
	fmt.Fprintf(out, "Value: %s\n", m.Value)
	if m.Position != nil {
		fmt.Fprintf(out, "Placement: (%.2f, %.2f) %.1f°\n", m.Position.X, m.Position.Y, float64(m.Position.Angle))
	}

	bbox := m.GetBoundingBox()
	if !bbox.IsEmpty() {
		fmt.Fprintf(out, "Pad extent: %.2f x %.2f mm\n", bbox.Width(), bbox.Height())
	}

	copper := m.CopperPads()
	fmt.Fprintf(out, "\nPads (%d):\n", len(copper))
	fmt.Fprintf(out, "  %-4s %8s %8s %6s %6s  %s\n", "Pad", "X", "Y", "W", "H", "Net")
	for _, p := range copper {
		net := "-"
		if p.Net != nil {
			net = fmt.Sprintf("%s (%d)", p.Net.Name, p.Net.Number)
		}
		fmt.Fprintf(out, "  %-4s %8.3f %8.3f %6.2f %6.2f  %s\n",
			p.Number, p.Position.X, p.Position.Y, p.Size.Width, p.Size.Height, net)
	}

	holes := m.MechanicalPads()
	fmt.Fprintf(out, "\nStabilizers (%d):\n", len(holes))
	for _, h := range holes {
		fmt.Fprintf(out, "  (%.2f, %.2f)\n", h.Position.X, h.Position.Y)
	}
}
