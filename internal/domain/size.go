package domain

import (
	"fmt"
	"strconv"
)

// FormatKiB renders a byte count in KiB with two decimals, e.g. "4.87".
func FormatKiB(bytes int64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/float64(KiB))
}

// FormatCeilingKiB renders a ceiling without trailing zeros, so 15360 bytes
// reads "15" and 15872 reads "15.5".
func FormatCeilingKiB(bytes int64) string {
	return strconv.FormatFloat(float64(bytes)/float64(KiB), 'f', -1, 64)
}
