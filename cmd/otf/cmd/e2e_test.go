package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint"
	"github.com/OpenTraceLab/OpenTraceFootprints/pkg/footprint/usbc"
)

// run executes the command tree with args and returns what it wrote.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// TestGenerateE2E tests the generate command end-to-end
func TestGenerateE2E(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "front with ground",
			args: []string{"generate", "usbc", "--at", "(at 0 0 0)", "--net", "A=GND"},
			wantContain: []string{
				"(module usb-c-socket-lumpy (layer F.Cu) (tedit 655D029A)",
				`(fp_text reference "USBC1"`,
				`(pad 1 smd roundrect (at -2.75 -6.4 180) (size 0.8 1.2) (layers "F.Cu" "F.Paste" "F.Mask") (net 1 "GND")`,
				"np_thru_hole",
			},
			wantNotContain: []string{`"B.`},
		},
		{
			name: "reverse with ground on F",
			args: []string{"generate", "usbc", "--reverse", "--at", "(at 5 5 0)", "--net", "f=GND", "--ref", "J9"},
			wantContain: []string{
				"(layer B.Cu)",
				`(fp_text reference "J9"`,
				`(pad 6 smd roundrect (at -2.75 -6.4 180) (size 0.8 1.2) (layers "B.Cu" "B.Paste" "B.Mask") (net 1 "GND")`,
			},
			wantNotContain: []string{`"F.`},
		},
		{
			name:           "skip stabilizers with derived reference",
			args:           []string{"generate", "usbc", "--skip-stabilizers", "--at", "(at 0 0 0)", "--designator", "J", "--index", "4"},
			wantContain:    []string{`(fp_text reference "J4"`},
			wantNotContain: []string{"np_thru_hole"},
		},
		{
			name:    "missing placement",
			args:    []string{"generate", "usbc"},
			wantErr: true,
		},
		{
			name:    "bad net terminal",
			args:    []string{"generate", "usbc", "--at", "(at 0 0 0)", "--net", "G=GND"},
			wantErr: true,
		},
		{
			name:    "malformed net flag",
			args:    []string{"generate", "usbc", "--at", "(at 0 0 0)", "--net", "GND"},
			wantErr: true,
		},
		{
			name:    "symmetric shorts two nets",
			args:    []string{"generate", "usbc", "--symmetric", "--at", "(at 0 0 0)", "--net", "A=GND", "--net", "B=VBUS"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := run(t, "", tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err, "output: %s", output)

			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.wantNotContain {
				assert.NotContains(t, output, unwanted)
			}
			assert.Equal(t, 6, strings.Count(output, " smd roundrect "))
		})
	}
}

// TestGenerateParamsE2E covers parameter files and flag precedence
func TestGenerateParamsE2E(t *testing.T) {
	dir := t.TempDir()
	params := filepath.Join(dir, "usbc.fpp")
	require.NoError(t, os.WriteFile(params, []byte(`
reverse = true
at      = "(at 1 2 0)"
ref     = P1
A = GND
`), 0o644))

	output, err := run(t, "", "generate", "usbc", "--params", params)
	require.NoError(t, err)
	assert.Contains(t, output, "(layer B.Cu)")
	assert.Contains(t, output, `(fp_text reference "P1"`)

	// Flags override the file.
	output, err = run(t, "", "generate", "usbc", "--params", params, "--reverse=false", "--ref", "P2")
	require.NoError(t, err)
	assert.Contains(t, output, "(layer F.Cu)")
	assert.Contains(t, output, `(fp_text reference "P2"`)

	_, err = run(t, "", "generate", "usbc", "--params", filepath.Join(dir, "missing.fpp"))
	assert.Error(t, err)
}

// TestGenerateInspectE2E writes a footprint to disk and inspects it
func TestGenerateInspectE2E(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usbc.kicad_mod")

	_, err := run(t, "", "generate", "usbc", "--reverse", "--at", "(at 0 0 0)",
		"--net", "A=GND", "--net", "B=VBUS", "--net", "E=VBUS", "--net", "F=GND", "-o", path)
	require.NoError(t, err)

	output, err := run(t, "", "inspect", path, "--check")
	require.NoError(t, err, "output: %s", output)

	for _, want := range []string{
		"Footprint: usb-c-socket-lumpy",
		"Side: back (B.Cu)",
		"Reference: USBC1",
		"Pads (6):",
		"GND (1)",
		"VBUS (2)",
		"Stabilizers (4):",
		"Check: OK",
	} {
		assert.Contains(t, output, want)
	}
}

// TestInspectE2E covers stdin input and check failures
func TestInspectE2E(t *testing.T) {
	generated, err := run(t, "", "generate", "usbc", "--at", "(at 0 0 0)")
	require.NoError(t, err)

	output, err := run(t, generated, "inspect", "-", "--check")
	require.NoError(t, err)
	assert.Contains(t, output, "Side: front (F.Cu)")

	mixed := strings.Replace(generated, `(layer "F.Fab")`, `(layer "B.Fab")`, 1)
	output, err = run(t, mixed, "inspect", "-", "--check")
	assert.Error(t, err)
	assert.Contains(t, output, "Check: 1 violation(s)")

	_, err = run(t, "(module broken", "inspect", "-")
	assert.Error(t, err)
}

func TestBindNetLogsBindings(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	footprint.SetLogger(zap.New(core))
	defer footprint.SetLogger(nil)

	var target usbc.Nets
	nets := footprint.NewNetTable()
	require.NoError(t, bindNet(&target, nets, "A=GND"))
	require.NoError(t, bindNet(&target, nets, " f = GND "))
	require.NoError(t, bindNet(&target, nets, "B="))

	require.NotNil(t, target.A)
	assert.Same(t, target.A, target.F)
	assert.Nil(t, target.B)

	bound := logs.FilterMessage("bound net").All()
	require.Len(t, bound, 2)
	assert.Equal(t, "A", bound[0].ContextMap()["terminal"])
	assert.Equal(t, false, bound[0].ContextMap()["shared"])
	assert.Equal(t, "F", bound[1].ContextMap()["terminal"])
	assert.Equal(t, "GND", bound[1].ContextMap()["net"])
	assert.Equal(t, true, bound[1].ContextMap()["shared"])

	assert.Equal(t, 1, logs.FilterMessage("terminal left unconnected").Len())
}
