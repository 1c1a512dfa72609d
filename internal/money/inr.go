package money

import (
	"fmt"
	"math"
	"strconv"
)

// FormatINR groups digits the en-IN way: the last three digits stand
// alone, every group before them is a pair. 1234567 -> "12,34,567".
func FormatINR(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head := s[:len(s)-3]
		out := ""
		for len(head) > 2 {
			out = "," + head[len(head)-2:] + out
			head = head[:len(head)-2]
		}
		s = head + out + "," + s[len(s)-3:]
	}

	if neg {
		return "-" + s
	}
	return s
}

// Rupees renders a model-provided figure as a rupee amount.
func Rupees(amount float64) string {
	return "₹" + FormatINR(int64(math.Round(amount)))
}

// RupeeRange renders a min-max estimate band.
func RupeeRange(min, max float64) string {
	return fmt.Sprintf("%s - %s", Rupees(min), Rupees(max))
}
