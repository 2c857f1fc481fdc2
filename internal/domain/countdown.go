package domain

import (
	"fmt"
	"time"
)

// FormatCountdown форматирует оставшееся время как "HH:MM:SS"
// Часы не ограничены 24 - до записи может оставаться несколько дней
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
