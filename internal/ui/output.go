package ui

import "fmt"

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Header returns a styled section header.
func Header(msg string) string {
	return Bold.Render(msg)
}

// Count returns a muted result summary, e.g. "3 tuples".
func Count(n int, singular, plural string) string {
	word := plural
	if n == 1 {
		word = singular
	}
	return Muted.Render(fmt.Sprintf("%d %s", n, word))
}
