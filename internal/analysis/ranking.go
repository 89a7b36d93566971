package analysis

import "sort"

// RankByAffinity profiles every element and returns them sorted by
// consciousness affinity, highest first. Ties fall back to atomic number so
// the order is stable across runs.
func (a *Analyzer) RankByAffinity() []*Profile {
	profiles := a.AnalyzeAll()
	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].ConsciousnessAffinity != profiles[j].ConsciousnessAffinity {
			return profiles[i].ConsciousnessAffinity > profiles[j].ConsciousnessAffinity
		}
		return profiles[i].AtomicNumber < profiles[j].AtomicNumber
	})
	return profiles
}
