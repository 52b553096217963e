package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd interface {
	SetArgs([]string)
	Execute() error
}, args ...string) {
	t.Helper()
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd)

	assert.Contains(t, buf.String(), "fieldsim version")
}

func TestRunCmd(t *testing.T) {
	path := writeScenario(t, `
seeds:
  - origin: demo
    a: -1.0
    b: -1.0
`)

	cmd := newRunCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--scenario", path)

	out := buf.String()
	assert.Contains(t, out, "demo: Crystallized")
	assert.Contains(t, out, "landmarks: 1")
	assert.Contains(t, out, "in-flight: 0")
}

func TestConvergeCmd(t *testing.T) {
	cmd := newConvergeCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--a", "0.5", "--b", "0.5", "--mass", "0.4")

	out := buf.String()
	assert.Contains(t, out, "converged: true")
	assert.Contains(t, out, "step 1:")
}

func TestPhasesCmd(t *testing.T) {
	cmd := newPhasesCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--step", "0.1")

	out := buf.String()
	assert.Contains(t, out, "Dormant")
	assert.Contains(t, out, "Organizing")
	assert.Contains(t, out, "Critical")
	assert.Contains(t, out, "Emergent")
	assert.Contains(t, out, "hysteresis")
}

func TestPhasesCmd_BadStep(t *testing.T) {
	cmd := newPhasesCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--step", "0"})

	assert.Error(t, cmd.Execute())
}

func TestUnfoldCmd(t *testing.T) {
	cmd := newUnfoldCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--attractor", "meridian", "--events", "3")

	out := buf.String()
	assert.Contains(t, out, "attractor/meridian")
	assert.Contains(t, out, "moves toward meridian: true")
}

func TestUnfoldCmd_Dormant(t *testing.T) {
	cmd := newUnfoldCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--attractor", "zenith")

	assert.Contains(t, buf.String(), "dormant")
}

func TestUnfoldCmd_Unknown(t *testing.T) {
	cmd := newUnfoldCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--attractor", "nonesuch"})

	assert.Error(t, cmd.Execute())
}

func TestWatchCmd(t *testing.T) {
	cmd := newWatchCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	execute(t, cmd, "--interval", "1ms", "--ticks", "3")

	out := buf.String()
	assert.Contains(t, out, "tick   1")
	assert.Contains(t, out, "tick   3")
}
