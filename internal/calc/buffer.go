package calc

import "strings"

// Operator glyphs as they appear in the buffer. Multiplication is shown as 'x'.
const (
	OpAdd rune = '+'
	OpSub rune = '-'
	OpMul rune = 'x'
	OpDiv rune = '/'
)

// DefaultPlaceholder is shown by Display when the buffer is empty.
const DefaultPlaceholder = "0"

// IsOperator reports whether r is one of the four operator glyphs.
// '*' counts as multiplication.
func IsOperator(r rune) bool {
	switch r {
	case OpAdd, OpSub, OpMul, OpDiv, '*':
		return true
	}
	return false
}

// IsSymbol reports whether r may be appended to a Buffer.
func IsSymbol(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || IsOperator(r)
}

// Buffer is the expression typed so far. The zero value is an empty buffer.
type Buffer struct {
	text string
}

// Append adds r to the end of the buffer and reports whether the buffer changed.
// An operator is rejected when the buffer is empty or already ends in an operator.
// Digits and '.' are not validated; malformed numbers fail at evaluation.
func (b *Buffer) Append(r rune) bool {
	if !IsSymbol(r) {
		return false
	}
	if IsOperator(r) {
		if b.text == "" || endsInOperator(b.text) {
			return false
		}
		if r == '*' {
			r = OpMul
		}
	}
	b.text += string(r)
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = ""
}

// DeleteLast removes the last character. No-op on an empty buffer.
func (b *Buffer) DeleteLast() {
	if b.text == "" {
		return
	}
	b.text = b.text[:len(b.text)-1]
}

// Text returns the buffer verbatim.
func (b *Buffer) Text() string {
	return b.text
}

// Display returns the buffer, or placeholder when it is empty.
func (b *Buffer) Display(placeholder string) string {
	if b.text == "" {
		return placeholder
	}
	return b.text
}

// Replace overwrites the buffer with text, e.g. an evaluation result.
func (b *Buffer) Replace(text string) {
	b.text = text
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

func endsInOperator(s string) bool {
	return s != "" && strings.ContainsRune("+-x/*", rune(s[len(s)-1]))
}
