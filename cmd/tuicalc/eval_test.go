package main

import (
	"bytes"
	"strings"
	"testing"

	"tuicalc/internal/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"2+2", "4", nil},
		{"2x3", "6", nil},
		{"2*3", "6", nil},
		{"2 + 3 x 4", "14", nil},
		{"2+2=", "4", nil},
		{"2+2=5", "45", nil},
		{"+5", "5", nil},   // leading operator dropped by the keypad
		{"5+-3", "8", nil}, // second operator dropped
		{"9007199254740993=", "9007199254740993", nil},
		{"123456789x123456789", "15241578750190521", nil},
		{"1/0", "1/0", calc.ErrDivisionByZero},
		{"5+", "5+", calc.ErrParse},
		{"1..2", "1..2", calc.ErrParse},
		{"2^3", "2", calc.ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := replay(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func runEvalCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	evalCmd.SetIn(strings.NewReader(stdin))
	evalCmd.SetOut(&out)
	evalCmd.SetErr(&errOut)
	t.Cleanup(func() {
		evalCmd.SetIn(nil)
		evalCmd.SetOut(nil)
		evalCmd.SetErr(nil)
		for _, name := range []string{"color", "no-fail", "verbose"} {
			f := evalCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
		}
	})
	require.NoError(t, evalCmd.Flags().Parse(append([]string{"--color=off"}, args...)))
	err := runEval(evalCmd, evalCmd.Flags().Args())
	return out.String(), errOut.String(), err
}

func TestRunEval_Args(t *testing.T) {
	out, _, err := runEvalCmd(t, "", "2+2", "7/2")
	require.NoError(t, err)
	assert.Equal(t, "4\n3.5\n", out)
}

func TestRunEval_Stdin(t *testing.T) {
	out, _, err := runEvalCmd(t, "1/4\n\n3x3\n")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n9\n", out)
}

func TestRunEval_FailureLeavesInput(t *testing.T) {
	out, errOut, err := runEvalCmd(t, "", "1/0", "1+1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, "1/0\n2\n", out)
	assert.Contains(t, errOut, "division by zero")

	_, _, err = runEvalCmd(t, "", "--no-fail", "5+")
	assert.NoError(t, err)
}

func TestRunEval_Verbose(t *testing.T) {
	_, errOut, err := runEvalCmd(t, "", "--verbose", "6/2")
	require.NoError(t, err)
	assert.Contains(t, errOut, `eval expr="6/2" result="3" outcome=success`)
}

func TestApplyColorMode(t *testing.T) {
	assert.NoError(t, applyColorMode("auto"))
	assert.Error(t, applyColorMode("sometimes"))
}
