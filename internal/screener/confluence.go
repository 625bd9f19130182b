package screener

// Pick is a stock name seen in more than one screen during a run.
type Pick struct {
	Name  string
	Count int
}

// CountNames counts exact-match occurrences. Names that differ only in
// case or spacing are counted separately.
func CountNames(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, n := range names {
		counts[n]++
	}
	return counts
}

// SuperPicks returns names occurring more than once, in first-appearance
// order. The NotAvailable placeholder is never a pick.
func SuperPicks(names []string) []Pick {
	counts := CountNames(names)

	var picks []Pick
	emitted := make(map[string]bool)
	for _, n := range names {
		if n == NotAvailable || emitted[n] || counts[n] < 2 {
			continue
		}
		emitted[n] = true
		picks = append(picks, Pick{Name: n, Count: counts[n]})
	}
	return picks
}
