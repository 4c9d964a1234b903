package registry

// PairSummary counts the entries of one fixture file.
type PairSummary struct {
	Pair      string `json:"pair" yaml:"pair"`
	Entries   int    `json:"entries" yaml:"entries"`
	Matched   int    `json:"matched" yaml:"matched"`
	Unmatched int    `json:"unmatched" yaml:"unmatched"`
}

type Summary struct {
	Pairs     []PairSummary `json:"pairs" yaml:"pairs"`
	Entries   int           `json:"entries" yaml:"entries"`
	Matched   int           `json:"matched" yaml:"matched"`
	Unmatched int           `json:"unmatched" yaml:"unmatched"`
}

func Summarize(registry Registry) Summary {
	summary := Summary{
		Pairs: make([]PairSummary, 0),
	}
	for _, pair := range registry.Pairs() {
		entries, _ := registry.Get(pair)
		pairSummary := PairSummary{
			Pair:    pair.String(),
			Entries: len(entries),
		}
		for _, entry := range entries {
			if entry.IsMatched() {
				pairSummary.Matched++
			} else {
				pairSummary.Unmatched++
			}
		}

		summary.Pairs = append(summary.Pairs, pairSummary)
		summary.Entries += pairSummary.Entries
		summary.Matched += pairSummary.Matched
		summary.Unmatched += pairSummary.Unmatched
	}
	return summary
}
