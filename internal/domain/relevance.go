package domain

// RelevanceFromDistance converts a raw similarity distance into a bounded
// [0,1] relevance score via 1 - d/2, clamped so distances beyond 2 cannot go
// negative. A nil distance yields the neutral default 0.5.
func RelevanceFromDistance(distance *float64) float64 {
	if distance == nil {
		return 0.5
	}
	score := 1 - *distance/2
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
