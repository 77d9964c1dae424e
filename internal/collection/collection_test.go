package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

func sample(n int) []goal.Goal {
	goals := make([]goal.Goal, n)
	for i := range goals {
		goals[i] = goal.Goal{ID: int64(i + 1), SkillName: "Skill", ProgressStatus: goal.StatusStarted}
	}
	return goals
}

func TestCollection_Empty(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Snapshot())
	assert.Equal(t, uint64(0), c.Generation())
}

func TestCollection_ReplaceAll_PreservesOrder(t *testing.T) {
	c := New()
	goals := sample(3)
	c.ReplaceAll(goals)

	snap := c.Snapshot()
	assert.Len(t, snap, 3)
	for i, g := range snap {
		assert.Equal(t, int64(i+1), g.ID)
	}
}

func TestCollection_ReplaceAll_Idempotent(t *testing.T) {
	c := New()
	goals := sample(2)

	c.ReplaceAll(goals)
	first := c.Snapshot()
	c.ReplaceAll(goals)
	second := c.Snapshot()

	// Same input twice leaves the observable contents identical.
	assert.Equal(t, first, second)
}

func TestCollection_ReplaceAll_BumpsGeneration(t *testing.T) {
	c := New()
	assert.Equal(t, uint64(1), c.ReplaceAll(sample(1)))
	assert.Equal(t, uint64(2), c.ReplaceAll(sample(1)))
	assert.Equal(t, uint64(2), c.Generation())
}

func TestCollection_SnapshotIsolation(t *testing.T) {
	c := New()
	input := sample(2)
	c.ReplaceAll(input)

	// Mutating the input after the swap must not affect the collection.
	input[0].SkillName = "changed"
	assert.Equal(t, "Skill", c.Snapshot()[0].SkillName)

	// Mutating a snapshot must not affect later reads.
	snap := c.Snapshot()
	snap[1].SkillName = "changed"
	assert.Equal(t, "Skill", c.Snapshot()[1].SkillName)
}
