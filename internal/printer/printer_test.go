package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	prevOut, prevErr, prevNoColor := Out, Err, color.NoColor
	out, errb := &bytes.Buffer{}, &bytes.Buffer{}
	Out, Err, color.NoColor = out, errb, true
	t.Cleanup(func() { Out, Err, color.NoColor = prevOut, prevErr, prevNoColor })
	return out, errb
}

func TestSuccessAddsSingleCheckmark(t *testing.T) {
	out, _ := capture(t)
	Success("applied %d migrations", 3)
	Success("✓ already prefixed")
	assert.Equal(t, "✓ applied 3 migrations\n✓ already prefixed\n", out.String())
}

func TestWarningAndInfo(t *testing.T) {
	out, _ := capture(t)
	Warning("redis unavailable")
	Info("listening on %s", ":5000")
	assert.Equal(t, "! redis unavailable\nlistening on :5000\n", out.String())
}

func TestErrorReturnsTitle(t *testing.T) {
	_, errb := capture(t)
	err := Error("Database unreachable", "check DB_HOST")
	require.Error(t, err)
	assert.Equal(t, "Database unreachable", err.Error())
	assert.Equal(t, "Database unreachable\ncheck DB_HOST\n", errb.String())
}
