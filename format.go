package pathkit

import "fmt"

// FormatByteCount renders a byte count with 1024-based units. Bytes and KB
// stay integral; MB and above carry one decimal. Unit selection compares the
// unrounded divided value at each step, so e.g. 1048575 bytes still formats
// as "1024KB".
func FormatByteCount(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	kb := float64(n) / 1024
	if kb < 1024 {
		return fmt.Sprintf("%.0fKB", kb)
	}
	mb := kb / 1024
	if mb < 1024 {
		return fmt.Sprintf("%.1fMB", mb)
	}
	gb := mb / 1024
	if gb < 1024 {
		return fmt.Sprintf("%.1fG", gb)
	}
	return fmt.Sprintf("%.1fT", gb/1024)
}
