package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSide(t *testing.T) {
	assert.Equal(t, Front, SideFor(false))
	assert.Equal(t, Back, SideFor(true))

	assert.Equal(t, "F.SilkS", Front.Layer("SilkS"))
	assert.Equal(t, "B.Cu", Back.Layer("Cu"))
	assert.Equal(t, "front", Front.String())
	assert.Equal(t, "back", Back.String())
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		layer  string
		want   Side
		wantOK bool
	}{
		{"F.Cu", Front, true},
		{"B.Paste", Back, true},
		{"B.SilkS", Back, true},
		{"*.Cu", Front, false},
		{"Edge.Cuts", Front, false},
		{"", Front, false},
	}

	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			got, ok := ParseSide(tt.layer)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNetClause(t *testing.T) {
	assert.Equal(t, `(net 1 "GND")`, Net{Number: 1, Name: "GND"}.Clause())
	assert.Equal(t, `(net 12 "USB \"D+\"")`, Net{Number: 12, Name: `USB "D+"`}.Clause())
}

func TestNetValidate(t *testing.T) {
	require.NoError(t, Net{Number: 3, Name: "VBUS"}.Validate())
	assert.ErrorIs(t, Net{Number: 3}.Validate(), ErrNetBinding)
	assert.ErrorIs(t, Net{Number: 0, Name: "GND"}.Validate(), ErrNetBinding)
	assert.ErrorIs(t, Net{Number: -1, Name: "GND"}.Validate(), ErrNetBinding)
}

func TestNetTable(t *testing.T) {
	nets := NewNetTable()

	gnd := nets.Net("GND")
	vbus := nets.Net("VBUS")
	require.NotNil(t, gnd)
	require.NotNil(t, vbus)

	assert.Equal(t, 1, gnd.Number)
	assert.Equal(t, 2, vbus.Number)
	assert.Same(t, gnd, nets.Net("GND"), "repeat lookups return the same net")
	assert.Nil(t, nets.Net(""), "empty name means unconnected")
	assert.Equal(t, 2, nets.Len())

	got, ok := nets.GetByName("VBUS")
	require.True(t, ok)
	assert.Same(t, vbus, got)
	_, ok = nets.GetByName("CC1")
	assert.False(t, ok)

	assert.Equal(t, []Net{{1, "GND"}, {2, "VBUS"}}, nets.Nets())
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Logger().Debug("hello", zap.String("k", "v"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].Message)
}
