package calc

import (
	"errors"
	"log"
	"time"
)

// Action is what an input event does to the buffer.
type Action int

const (
	ActionAppend Action = iota
	ActionClear
	ActionDelete
	ActionEvaluate
)

func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	case ActionDelete:
		return "delete"
	case ActionEvaluate:
		return "evaluate"
	}
	return "unknown"
}

// Input is one button or key press. Symbol is only used by ActionAppend.
type Input struct {
	Action Action
	Symbol rune
}

// InputForLabel maps a button label or typed character to an Input.
// "c" clears, "=" evaluates, "*" is multiplication; symbols append.
func InputForLabel(label string) (Input, bool) {
	switch label {
	case "c", "C":
		return Input{Action: ActionClear}, true
	case "=":
		return Input{Action: ActionEvaluate}, true
	case "*":
		return Input{Action: ActionAppend, Symbol: OpMul}, true
	}
	r := []rune(label)
	if len(r) == 1 && IsSymbol(r[0]) {
		return Input{Action: ActionAppend, Symbol: r[0]}, true
	}
	return Input{}, false
}

// Evaluation describes one evaluation attempt.
type Evaluation struct {
	Expression string
	Result     string // empty on failure
	Err        error
	Start      time.Time
	Duration   time.Duration
}

// Outcome is a short label for logs and span attributes.
func (e Evaluation) Outcome() string {
	if e.Err == nil {
		return "success"
	}
	switch {
	case errors.Is(e.Err, ErrParse):
		return "parse-error"
	case errors.Is(e.Err, ErrDivisionByZero):
		return "division-by-zero"
	case errors.Is(e.Err, ErrOverflow):
		return "overflow"
	}
	return "failure"
}

// Observer is notified of every evaluation attempt.
type Observer interface {
	OnEvaluate(Evaluation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Evaluation)

// OnEvaluate implements Observer.
func (f ObserverFunc) OnEvaluate(e Evaluation) { f(e) }

// LogObserver logs each evaluation to a standard logger.
type LogObserver struct {
	Logger *log.Logger
}

// OnEvaluate implements Observer.
func (o LogObserver) OnEvaluate(e Evaluation) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf("eval expr=%q result=%q outcome=%s err=%v duration=%s",
		e.Expression, e.Result, e.Outcome(), e.Err, e.Duration)
}

// Session owns the buffer for one calculator and applies inputs to it.
// It is not safe for concurrent use; the ui drives it from the Bubble Tea update loop.
type Session struct {
	buf       Buffer
	observers []Observer
	now       func() time.Time
}

// NewSession creates a session with an empty buffer.
func NewSession(observers ...Observer) *Session {
	return &Session{
		observers: observers,
		now:       time.Now,
	}
}

// AddObserver registers o for subsequent evaluations.
func (s *Session) AddObserver(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

// Apply performs in. Only ActionEvaluate can fail; the buffer is unchanged on failure.
func (s *Session) Apply(in Input) error {
	switch in.Action {
	case ActionAppend:
		s.buf.Append(in.Symbol)
	case ActionClear:
		s.buf.Clear()
	case ActionDelete:
		s.buf.DeleteLast()
	case ActionEvaluate:
		return s.Evaluate()
	}
	return nil
}

// Append adds r per Buffer.Append rules.
func (s *Session) Append(r rune) bool { return s.buf.Append(r) }

// Clear empties the buffer.
func (s *Session) Clear() { s.buf.Clear() }

// DeleteLast removes the last character, if any.
func (s *Session) DeleteLast() { s.buf.DeleteLast() }

// Text returns the buffer contents.
func (s *Session) Text() string { return s.buf.Text() }

// Display returns the buffer, or placeholder when empty.
func (s *Session) Display(placeholder string) string { return s.buf.Display(placeholder) }

// Evaluate replaces the buffer with the value of its expression.
// On error the buffer is left as it was and the error is returned for the
// caller to log or ignore. Appending after a successful Evaluate continues
// the result text.
func (s *Session) Evaluate() error {
	expr := s.buf.Text()
	start := s.now()
	result, err := Evaluate(expr)
	if err == nil {
		s.buf.Replace(result)
	}
	ev := Evaluation{
		Expression: expr,
		Result:     result,
		Err:        err,
		Start:      start,
		Duration:   s.now().Sub(start),
	}
	for _, o := range s.observers {
		o.OnEvaluate(ev)
	}
	return err
}
