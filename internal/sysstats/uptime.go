package sysstats

import (
	"fmt"
	"strings"
	"time"
)

// FormatUptime renders a duration as compact "2d4h33m12s" text, dropping the
// components that are zero. Durations under one second render as "0s".
func FormatUptime(up time.Duration) string {
	total := int64(up / time.Second)
	if total <= 0 {
		return "0s"
	}

	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	var sb strings.Builder

	if days > 0 {
		fmt.Fprintf(&sb, "%dd", days)
	}

	if hours > 0 {
		fmt.Fprintf(&sb, "%dh", hours)
	}

	if minutes > 0 {
		fmt.Fprintf(&sb, "%dm", minutes)
	}

	if seconds > 0 {
		fmt.Fprintf(&sb, "%ds", seconds)
	}

	return sb.String()
}
