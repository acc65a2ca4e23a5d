// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/polycone/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(quiet bool) (*shell, *bytes.Buffer, *bytes.Buffer) {
	var out, errs bytes.Buffer

	return &shell{in: interp.New(), out: &out, errs: &errs, quiet: quiet}, &out, &errs
}

// TestRunScript keeps going after a failing line.
func TestRunScript(t *testing.T) {
	sh, out, errs := newTestShell(false)
	script := strings.Join([]string{
		"q = coneViaInequalities([[1,0],[0,1]])",
		"dimension(q)",
		"dimension(1)",
		"isFullSpace(q)",
		"",
	}, "\n")

	status := sh.run(strings.NewReader(script))
	assert.Equal(t, 1, status)
	assert.Equal(t, "2\n0\n", out.String())
	require.True(t, strings.HasPrefix(errs.String(), "? dimension: interp: type mismatch"))
}

// TestRunQuiet prints nothing on success.
func TestRunQuiet(t *testing.T) {
	sh, out, errs := newTestShell(true)
	status := sh.run(strings.NewReader("q = cone(2)\nambientDimension(q)\n"))
	assert.Equal(t, 0, status)
	assert.Empty(t, out.String())
	assert.Empty(t, errs.String())
}

// TestComplete offers commands and variables by prefix.
func TestComplete(t *testing.T) {
	sh, _, _ := newTestShell(true)
	require.True(t, sh.eval("coneA = cone(1)"))

	head, cs, tail := sh.complete("dimension(cone", len("dimension(cone"))
	assert.Equal(t, "dimension(", head)
	assert.Equal(t, "", tail)
	assert.Contains(t, cs, "coneViaInequalities")
	assert.Contains(t, cs, "coneA")
	assert.NotContains(t, cs, "dimension")

	_, cs, _ = sh.complete("x = ", 4)
	assert.Empty(t, cs)
}
