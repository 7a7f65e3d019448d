package session

// ProgressPercent returns the completion percentage for a progress bar.
// An empty item list still reaches completion; 0/0 is treated as 0%.
func ProgressPercent(current, total int) int {
	if total <= 0 {
		return 0
	}
	pct := (current * 100) / total
	if pct > 100 {
		pct = 100
	}
	return pct
}
