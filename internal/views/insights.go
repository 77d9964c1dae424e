package views

import (
	"math"
	"strings"
	"time"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// keywordRule pairs a skill-name keyword with the suggestions it triggers.
// The table is ordered; matches are unioned in table order without
// deduplication across rules.
type keywordRule struct {
	keyword     string
	suggestions []string
}

var keywordRules = []keywordRule{
	{"react", []string{"Next.js Framework", "TypeScript", "React Testing"}},
	{"python", []string{"Django", "Data Science", "Machine Learning"}},
}

// fallbackRecommendations is returned when no keyword matches any skill name.
var fallbackRecommendations = []string{
	"JavaScript Fundamentals", "Git Version Control", "Problem Solving",
}

// Insights is the recommendation list plus the analytics panel numbers.
type Insights struct {
	Recommendations []string

	TotalHours float64

	// AvgDifficulty is the mean difficulty rating rounded to one decimal,
	// zero for an empty collection.
	AvgDifficulty float64

	// MostActiveCategory is the resource type of the first goal in
	// collection order, "N/A" when empty. It is a cheap proxy, not a
	// mode over the whole collection.
	MostActiveCategory string

	// StreakDays is the number of distinct calendar days on which goals
	// were created.
	StreakDays int
}

// ComputeInsights derives recommendations and analytics from the collection.
func ComputeInsights(goals []goal.Goal) Insights {
	ins := Insights{
		Recommendations:    recommend(goals),
		MostActiveCategory: "N/A",
	}

	var difficulty float64
	days := make(map[time.Time]struct{})
	for _, g := range goals {
		ins.TotalHours += g.HoursSpent
		difficulty += float64(g.DifficultyRating)

		y, m, d := g.CreatedAt.Local().Date()
		days[time.Date(y, m, d, 0, 0, 0, 0, time.Local)] = struct{}{}
	}

	if len(goals) > 0 {
		ins.AvgDifficulty = math.Round(difficulty/float64(len(goals))*10) / 10
		ins.MostActiveCategory = string(goals[0].ResourceType)
	}
	ins.StreakDays = len(days)

	return ins
}

func recommend(goals []goal.Goal) []string {
	var recs []string
	for _, rule := range keywordRules {
		for _, g := range goals {
			if strings.Contains(strings.ToLower(g.SkillName), rule.keyword) {
				recs = append(recs, rule.suggestions...)
				break
			}
		}
	}
	if len(recs) == 0 {
		recs = append(recs, fallbackRecommendations...)
	}
	return recs
}
