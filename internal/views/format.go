package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// ProgressPercent maps a progress status onto the displayed completion
// percentage: started 25, in-progress 75, completed 100.
func ProgressPercent(s goal.Status) int {
	switch s {
	case goal.StatusCompleted:
		return 100
	case goal.StatusInProgress:
		return 75
	default:
		return 25
	}
}

// PlatformIcon returns the glyph shown next to a goal's platform.
func PlatformIcon(platform string) string {
	switch platform {
	case "YouTube":
		return "🎥"
	case "Udemy":
		return "🎓"
	case "Coursera":
		return "🏫"
	default:
		return "📖"
	}
}

// StatusIcon returns the glyph shown next to a progress status.
func StatusIcon(s goal.Status) string {
	switch s {
	case goal.StatusCompleted:
		return "✅"
	case goal.StatusInProgress:
		return "🚀"
	default:
		return "📝"
	}
}

// FormatHours renders an hour count as "2h" or "2.5h" without trailing
// zeros.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64) + "h"
}

// FormatStars renders a difficulty rating 1-5 as stars.
func FormatStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	stars := ""
	for i := 0; i < rating; i++ {
		stars += "⭐"
	}
	return stars
}

// FormatBucketDate renders a timeline bucket header date.
func FormatBucketDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatSkillCount renders "N skill" with plural handling for bucket
// headers.
func FormatSkillCount(n int) string {
	if n == 1 {
		return "1 skill"
	}
	return fmt.Sprintf("%d skills", n)
}
