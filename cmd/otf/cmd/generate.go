package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceFootprints/internal/paramfile"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint/usbc"
)

type generateOptions struct {
	paramsFile      string
	designator      string
	index           int
	reverse         bool
	symmetric       bool
	skipStabilizers bool
	nets            []string
	at              string
	rotation        float64
	ref             string
	output          string
}

func newGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a footprint",
		Long:  `Commands that write footprint text (KiCad module format)`,
	}

	opts := &generateOptions{}
	usbcCmd := &cobra.Command{
		Use:   "usbc",
		Short: "Generate a USB-C receptacle footprint",
		Long: `Writes the six-contact USB-C receptacle footprint.

Nets are bound per terminal with --net, e.g. --net A=GND --net B=VBUS:
  A, F  ground contacts (B12, A12)
  B, E  VBUS contacts   (B9, A9)
  C, D  data contacts   (A5, B5)
Unbound terminals produce unconnected pads.

Parameters may also come from a file (--params); flags given on the command
line override values from the file. Without --ref the reference is the
designator followed by --index, e.g. USBC1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateUSBC(cmd, opts)
		},
	}

	f := usbcCmd.Flags()
	f.StringVar(&opts.paramsFile, "params", "", "parameter file")
	f.StringVar(&opts.designator, "designator", usbc.DefaultDesignator, "reference prefix")
	f.IntVar(&opts.index, "index", 1, "instance number appended to the designator when --ref is not set")
	f.BoolVar(&opts.reverse, "reverse", false, "mirror the footprint onto the back side")
	f.BoolVar(&opts.symmetric, "symmetric", false, "merge pads 1 and 2 into one contact region")
	f.BoolVar(&opts.skipStabilizers, "skip-stabilizers", false, "omit the shell stabilizer holes")
	f.StringArrayVar(&opts.nets, "net", nil, "net binding TERMINAL=NAME (repeatable)")
	f.StringVar(&opts.at, "at", "", "placement clause, e.g. \"(at 10 20 90)\"")
	f.Float64Var(&opts.rotation, "rotation", 0, "footprint rotation in degrees")
	f.StringVar(&opts.ref, "ref", "", "reference text")
	f.StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")

	generateCmd.AddCommand(usbcCmd)
	return generateCmd
}

func runGenerateUSBC(cmd *cobra.Command, opts *generateOptions) error {
	cfg := usbc.Config{}
	nets := footprint.NewNetTable()

	if opts.paramsFile != "" {
		file, err := paramfile.ParseFile(opts.paramsFile)
		if err != nil {
			return fmt.Errorf("error reading parameters: %w", err)
		}
		if err := file.ApplyUSBC(&cfg, nets); err != nil {
			return fmt.Errorf("error in parameters: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("designator") || cfg.Designator == "" {
		cfg.Designator = opts.designator
	}
	if flags.Changed("reverse") {
		cfg.Reverse = usbc.Bool(opts.reverse)
	}
	if flags.Changed("symmetric") {
		cfg.Symmetric = usbc.Bool(opts.symmetric)
	}
	if flags.Changed("skip-stabilizers") {
		cfg.SkipStabilizers = usbc.Bool(opts.skipStabilizers)
	}
	if flags.Changed("at") {
		cfg.Position = opts.at
	}
	if flags.Changed("rotation") {
		cfg.Rotation = opts.rotation
	}
	if flags.Changed("ref") {
		cfg.Reference = opts.ref
	}
	for _, binding := range opts.nets {
		if err := bindNet(&cfg.Nets, nets, binding); err != nil {
			return err
		}
	}

	if cfg.Reference == "" {
		cfg.Reference = cfg.Designator + strconv.Itoa(opts.index)
	}

	out, err := usbc.Generate(cfg)
	if err != nil {
		return fmt.Errorf("error generating footprint: %w", err)
	}

	if opts.output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("error writing footprint: %w", err)
	}
	footprint.Logger().Info("wrote footprint",
		zap.String("file", opts.output),
		zap.Int("nets", nets.Len()))
	return nil
}

// bindNet applies a TERMINAL=NAME flag value.
func bindNet(target *usbc.Nets, nets *footprint.NetTable, binding string) error {
	terminal, name, ok := strings.Cut(binding, "=")
	if !ok {
		return fmt.Errorf("invalid --net %q: want TERMINAL=NAME", binding)
	}
	name = strings.TrimSpace(name)
	terminal = strings.ToUpper(strings.TrimSpace(terminal))
	_, known := nets.GetByName(name)
	net := nets.Net(name)

	switch terminal {
	case "A":
		target.A = net
	case "B":
		target.B = net
	case "C":
		target.C = net
	case "D":
		target.D = net
	case "E":
		target.E = net
	case "F":
		target.F = net
	default:
		return fmt.Errorf("invalid --net %q: terminal must be one of A-F", binding)
	}

	if net == nil {
		footprint.Logger().Debug("terminal left unconnected", zap.String("terminal", terminal))
		return nil
	}
	footprint.Logger().Debug("bound net",
		zap.String("terminal", terminal),
		zap.String("net", net.Name),
		zap.Int("number", net.Number),
		zap.Bool("shared", known))
	return nil
}
