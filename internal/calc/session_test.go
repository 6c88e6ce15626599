package calc

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeLabels feeds each character of keys to s as a button press.
func typeLabels(t *testing.T, s *Session, keys string) {
	t.Helper()
	for _, r := range keys {
		in, ok := InputForLabel(string(r))
		require.True(t, ok, "no input for %q", r)
		_ = s.Apply(in)
	}
}

func TestSession_EvaluateReplacesBuffer(t *testing.T) {
	s := NewSession()
	typeLabels(t, s, "2+2")
	require.NoError(t, s.Evaluate())
	assert.Equal(t, "4", s.Text())

	s.Clear()
	typeLabels(t, s, "2x3=")
	assert.Equal(t, "6", s.Text())
}

func TestSession_FailuresLeaveBufferUnchanged(t *testing.T) {
	for _, expr := range []string{"1/0", "5+", "1..2"} {
		s := NewSession()
		typeLabels(t, s, expr)
		err := s.Evaluate()
		assert.Error(t, err, expr)
		assert.Equal(t, expr, s.Text())
	}
}

func TestSession_AppendAfterEvaluateContinuesResult(t *testing.T) {
	s := NewSession()
	typeLabels(t, s, "2+2=5")
	assert.Equal(t, "45", s.Text())
}

func TestSession_NegativeResultCanBeContinued(t *testing.T) {
	s := NewSession()
	typeLabels(t, s, "2-5=+1=")
	assert.Equal(t, "-2", s.Text())
}

func TestSession_ApplyActions(t *testing.T) {
	s := NewSession()
	typeLabels(t, s, "12+")
	require.NoError(t, s.Apply(Input{Action: ActionDelete}))
	assert.Equal(t, "12", s.Text())
	require.NoError(t, s.Apply(Input{Action: ActionClear}))
	assert.Equal(t, "", s.Text())
	assert.Equal(t, "0", s.Display(DefaultPlaceholder))

	// Delete on empty must not fail.
	require.NoError(t, s.Apply(Input{Action: ActionDelete}))
	assert.Equal(t, "", s.Text())
}

func TestInputForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Input
		ok    bool
	}{
		{"c", Input{Action: ActionClear}, true},
		{"=", Input{Action: ActionEvaluate}, true},
		{"*", Input{Action: ActionAppend, Symbol: OpMul}, true},
		{"x", Input{Action: ActionAppend, Symbol: OpMul}, true},
		{"7", Input{Action: ActionAppend, Symbol: '7'}, true},
		{".", Input{Action: ActionAppend, Symbol: '.'}, true},
		{"q", Input{}, false},
		{"12", Input{}, false},
	}
	for _, tt := range tests {
		got, ok := InputForLabel(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestSession_ObserversSeeEveryAttempt(t *testing.T) {
	var got []Evaluation
	s := NewSession(ObserverFunc(func(e Evaluation) { got = append(got, e) }))
	tick := time.Unix(100, 0)
	s.now = func() time.Time {
		tick = tick.Add(time.Millisecond)
		return tick
	}

	typeLabels(t, s, "1/0=")
	s.Clear()
	typeLabels(t, s, "3x3=")

	require.Len(t, got, 2)
	assert.Equal(t, "1/0", got[0].Expression)
	assert.Equal(t, "division-by-zero", got[0].Outcome())
	assert.Empty(t, got[0].Result)
	assert.Equal(t, "3x3", got[1].Expression)
	assert.Equal(t, "9", got[1].Result)
	assert.Equal(t, "success", got[1].Outcome())
	assert.Equal(t, time.Millisecond, got[1].Duration)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession()
	s.AddObserver(LogObserver{Logger: log.New(&buf, "", 0)})
	typeLabels(t, s, "5+=")

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, `eval expr="5+" result="" outcome=parse-error`), line)
}
