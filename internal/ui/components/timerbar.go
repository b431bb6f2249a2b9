package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// urgentFraction is the remaining-time share below which the bar turns red.
const urgentFraction = 0.2

// RenderTimerBar renders the countdown as a horizontal bar plus clock.
// remaining and total are whole seconds.
func RenderTimerBar(remaining, total, width int) string {
	if total <= 0 || width < 12 {
		return ""
	}
	if remaining < 0 {
		remaining = 0
	}

	clock := formatClock(remaining)
	barWidth := width - len(clock) - 3
	if barWidth < 4 {
		barWidth = 4
	}

	frac := float64(remaining) / float64(total)
	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	fill := theme.TimerCalm
	if frac < urgentFraction {
		fill = theme.TimerUrgent
	}

	bar := fill.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return bar + "  " + fill.Render(clock)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
