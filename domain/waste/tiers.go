package waste

// Tier is a named rank reached once the total crosses Threshold seconds.
type Tier struct {
	Rank      int
	Threshold int64
	Name      string
}

// UnknownTier is returned for totals below every threshold (negative totals).
var UnknownTier = Tier{Rank: -1, Threshold: -1, Name: "Unknown Lifeform"}

// tiers is ascending by Threshold.
var tiers = []Tier{
	{Rank: 0, Threshold: 0, Name: "Waste Novice"},
	{Rank: 1, Threshold: 60, Name: "Time Libertarian"},
	{Rank: 2, Threshold: 600, Name: "Procrastination Master"},
	{Rank: 3, Threshold: 3600, Name: "Time Philosopher"},
	{Rank: 4, Threshold: 86400, Name: "Avatar of Entropy"},
}

// Tiers returns a copy of the tier table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierFor returns the highest tier whose threshold does not exceed total.
func TierFor(total int64) Tier {
	for i := len(tiers) - 1; i >= 0; i-- {
		if total >= tiers[i].Threshold {
			return tiers[i]
		}
	}
	return UnknownTier
}

// LevelFor returns the tier name for total.
func LevelFor(total int64) string { return TierFor(total).Name }

// NextTier returns the tier after the one total has reached and the seconds
// still missing. ok is false at the top tier.
func NextTier(total int64) (next Tier, remaining int64, ok bool) {
	for _, t := range tiers {
		if t.Threshold > total {
			return t, t.Threshold - total, true
		}
	}
	return Tier{}, 0, false
}
