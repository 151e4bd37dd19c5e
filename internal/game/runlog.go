package game

import (
	"log/slog"
	"maps"
	"sort"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	DeepestDepth   int            `json:"deepest_depth"`
	TurnsPlayed    int            `json:"turns_played"`
	EnemiesKilled  map[string]int `json:"enemies_killed"` // species name → kill count
	PotionsFound   int            `json:"potions_found"`
	PotionsQuaffed int            `json:"potions_quaffed"`
	DamageDealt    int            `json:"damage_dealt"`
	DamageTaken    int            `json:"damage_taken"`
	CauseOfDeath   string         `json:"cause_of_death,omitempty"` // last monster that hurt the player
}

func newRunLog() RunLog {
	return RunLog{EnemiesKilled: make(map[string]int)}
}

// Clone returns a copy that shares no maps with r.
func (r RunLog) Clone() RunLog {
	r.EnemiesKilled = maps.Clone(r.EnemiesKilled)
	if r.EnemiesKilled == nil {
		r.EnemiesKilled = make(map[string]int)
	}
	return r
}

// TotalKills sums kills over every species.
func (r RunLog) TotalKills() int {
	n := 0
	for _, c := range r.EnemiesKilled {
		n += c
	}
	return n
}

// KillCount is one row of the kill breakdown.
type KillCount struct {
	Name  string
	Count int
}

// Kills returns the kill breakdown sorted by count descending, then name.
func (r RunLog) Kills() []KillCount {
	kills := make([]KillCount, 0, len(r.EnemiesKilled))
	for name, n := range r.EnemiesKilled {
		kills = append(kills, KillCount{name, n})
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].Count != kills[j].Count {
			return kills[i].Count > kills[j].Count
		}
		return kills[i].Name < kills[j].Name
	})
	return kills
}

// LogValue implements slog.LogValuer so a RunLog logs as a group.
func (r RunLog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("deepest_depth", r.DeepestDepth),
		slog.Int("turns", r.TurnsPlayed),
		slog.Int("kills", r.TotalKills()),
		slog.Int("potions_found", r.PotionsFound),
		slog.Int("potions_quaffed", r.PotionsQuaffed),
		slog.Int("damage_dealt", r.DamageDealt),
		slog.Int("damage_taken", r.DamageTaken),
		slog.String("cause_of_death", r.CauseOfDeath),
	)
}
