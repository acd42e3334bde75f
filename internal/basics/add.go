package basics

import "fmt"

// Default operands for the addition step.
const (
	DefaultA = 2
	DefaultB = 3
)

// Add returns a + b using native int arithmetic.
func Add(a, b int) int {
	return a + b
}

// FormatSum renders an addition as "a + b = sum".
func FormatSum(a, b int) string {
	return fmt.Sprintf("%d + %d = %d", a, b, Add(a, b))
}
