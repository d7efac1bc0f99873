package analytics

import "github.com/blaisecz/zenith/internal/domain"

const (
	// XPPerCompletion is the experience awarded for each completed log.
	XPPerCompletion = 10

	// MaxRank is reported as the next rank once the top rank is reached.
	MaxRank = "MAX"
)

// Rank is one tier of the experience ladder.
type Rank struct {
	Name  string
	MinXP int
}

// Ranks is ordered by ascending MinXP.
var Ranks = []Rank{
	{Name: "Initiate", MinXP: 0},
	{Name: "Operative", MinXP: 500},
	{Name: "Specialist", MinXP: 1500},
	{Name: "Commander", MinXP: 3000},
	{Name: "Architect", MinXP: 6000},
	{Name: "Master", MinXP: 10000},
}

// ComputeLevel derives xp, rank and progress towards the next rank.
func ComputeLevel(totalCompletions int) domain.Level {
	xp := totalCompletions * XPPerCompletion

	idx := 0
	for i := len(Ranks) - 1; i >= 0; i-- {
		if xp >= Ranks[i].MinXP {
			idx = i
			break
		}
	}
	rank := Ranks[idx]

	level := domain.Level{
		XP:       xp,
		Rank:     rank.Name,
		NextRank: MaxRank,
		Progress: 100,
	}
	if idx+1 < len(Ranks) {
		next := Ranks[idx+1]
		level.NextRank = next.Name
		level.Progress = float64(xp-rank.MinXP) / float64(next.MinXP-rank.MinXP) * 100
	}
	return level
}

// TotalCompletions counts completed logs across all protocols.
func TotalCompletions(logs []domain.HabitLog) int {
	total := 0
	for _, log := range logs {
		if log.Completed {
			total++
		}
	}
	return total
}
