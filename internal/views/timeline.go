package views

import (
	"sort"
	"time"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// TimelineBucket is the set of goals created on one calendar day.
type TimelineBucket struct {
	// Date is midnight (local time) of the bucket's calendar day.
	Date time.Time

	// Goals are the bucket's members in collection order.
	Goals []goal.Goal
}

// GroupByCreationDate buckets goals by the calendar-date portion of
// created_at and returns the buckets sorted most recent day first.
// Two goals created at different times on the same day share a bucket.
func GroupByCreationDate(goals []goal.Goal) []TimelineBucket {
	index := make(map[time.Time]int)
	var buckets []TimelineBucket

	for _, g := range goals {
		y, m, d := g.CreatedAt.Local().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.Local)

		if i, seen := index[day]; seen {
			buckets[i].Goals = append(buckets[i].Goals, g)
		} else {
			index[day] = len(buckets)
			buckets = append(buckets, TimelineBucket{Date: day, Goals: []goal.Goal{g}})
		}
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})

	return buckets
}
