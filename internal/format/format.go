// Package format holds pure display formatters for the plan table.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Blank is the placeholder rendered for empty cells.
const Blank = "—"

// Duration renders seconds as h:mm:ss, or m:ss under an hour.
func Duration(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Day renders an ISO day string as "Jan 2".
func Day(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// Clock renders a timestamp as a compact "7:05am".
func Clock(t time.Time) string {
	if t.IsZero() {
		return Blank
	}
	return strings.ToLower(t.Format("3:04pm"))
}

// Miles renders a distance with one decimal place.
func Miles(distance float64) string {
	return fmt.Sprintf("%.1f", distance)
}

// Sleep renders fractional hours as "7h30m".
func Sleep(hours float64) string {
	whole := math.Floor(hours)
	mins := int(math.Round((hours - whole) * 60))
	if mins == 60 {
		whole++
		mins = 0
	}
	return fmt.Sprintf("%dh%02dm", int(whole), mins)
}

// Temp renders a temperature rounded to whole degrees.
func Temp(temperature float64) string {
	return fmt.Sprintf("%d°", int(math.Round(temperature)))
}
