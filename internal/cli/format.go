package cli

import (
	"fmt"
	"time"
)

// formatElapsed renders a duration as h:mm:ss for live display.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// formatIncome renders a monetary amount with two decimals.
func formatIncome(income float64) string {
	return fmt.Sprintf("%.2f", income)
}
