package game

import "fmt"

// FormatScore renders the score display text.
func FormatScore(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("High Score: %d", n)
}
