package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

func created(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 30, 0, 0, time.Local)
}

func TestGroupByCreationDate_Empty(t *testing.T) {
	assert.Empty(t, GroupByCreationDate(nil))
}

func TestGroupByCreationDate_SameDayDifferentTimes(t *testing.T) {
	goals := []goal.Goal{
		{ID: 1, CreatedAt: created(2026, time.March, 5, 9)},
		{ID: 2, CreatedAt: created(2026, time.March, 5, 21)},
	}

	buckets := GroupByCreationDate(goals)

	require.Len(t, buckets, 1)
	assert.Len(t, buckets[0].Goals, 2)
}

func TestGroupByCreationDate_SortedDescending(t *testing.T) {
	goals := []goal.Goal{
		{ID: 1, CreatedAt: created(2026, time.January, 10, 8)},
		{ID: 2, CreatedAt: created(2026, time.March, 1, 8)},
		{ID: 3, CreatedAt: created(2026, time.February, 14, 8)},
	}

	buckets := GroupByCreationDate(goals)

	require.Len(t, buckets, 3)
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Date.After(buckets[i].Date),
			"buckets must be strictly descending by date")
	}
	assert.Equal(t, int64(2), buckets[0].Goals[0].ID)
}

func TestGroupByCreationDate_EveryGoalInExactlyOneBucket(t *testing.T) {
	goals := []goal.Goal{
		{ID: 1, CreatedAt: created(2026, time.May, 1, 8)},
		{ID: 2, CreatedAt: created(2026, time.May, 2, 8)},
		{ID: 3, CreatedAt: created(2026, time.May, 1, 18)},
		{ID: 4, CreatedAt: created(2026, time.May, 3, 8)},
	}

	buckets := GroupByCreationDate(goals)

	seen := make(map[int64]int)
	total := 0
	for _, b := range buckets {
		for _, g := range b.Goals {
			seen[g.ID]++
			total++
		}
	}
	assert.Equal(t, len(goals), total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "goal %d appears in more than one bucket", id)
	}
}

func TestGroupByCreationDate_WithinBucketIsCollectionOrder(t *testing.T) {
	goals := []goal.Goal{
		{ID: 9, CreatedAt: created(2026, time.May, 1, 23)},
		{ID: 4, CreatedAt: created(2026, time.May, 1, 1)},
	}

	buckets := GroupByCreationDate(goals)

	require.Len(t, buckets, 1)
	// Collection order, not time-of-day order.
	assert.Equal(t, int64(9), buckets[0].Goals[0].ID)
	assert.Equal(t, int64(4), buckets[0].Goals[1].ID)
}
