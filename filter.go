package abstractbook

// FilterByDecision keeps the submissions whose decision equals decision
// exactly, preserving order.
func FilterByDecision(subs []Submission, decision string) []Submission {
	kept := make([]Submission, 0, len(subs))
	for _, s := range subs {
		if s.Decision == decision {
			kept = append(kept, s)
		}
	}
	return kept
}

// DecisionCounts tallies the decision values present.
func DecisionCounts(subs []Submission) map[string]int {
	counts := make(map[string]int)
	for _, s := range subs {
		counts[s.Decision]++
	}
	return counts
}

// DuplicateIDs returns, in first-seen order, the IDs whose card anchor is
// already taken by an earlier submission. This includes distinct IDs that
// only collide after anchor sanitizing.
func DuplicateIDs(subs []Submission) []string {
	seen := make(map[string]bool, len(subs))
	reported := make(map[string]bool)
	var dups []string
	for _, s := range subs {
		a := CardAnchor(s.ID)
		if seen[a] && !reported[s.ID] {
			dups = append(dups, s.ID)
			reported[s.ID] = true
		}
		seen[a] = true
	}
	return dups
}
