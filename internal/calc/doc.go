// Package calc holds the calculator's state and arithmetic.
//
//   - Buffer: the expression typed so far, with the operator adjacency rules
//   - Evaluate: a small tokenizer and recursive-descent evaluator for + - * /
//   - Session: owns one Buffer and maps input events onto it
//
// Nothing here knows about the terminal; the ui package renders a Session.
package calc
