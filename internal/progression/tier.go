package progression

// Tier computes a user's medal tier from the positions of their completed
// goals. Block b covers positions 4b+1..4b+4 and counts only when all four
// positions are present; counting stops at the first incomplete block.
//
// The tier is derived from durable completed-goal state rather than
// incremented, so replaying the same set always yields the same result and
// duplicate completion triggers are harmless.
func Tier(completedPositions []int) int {
	present := make(map[int]bool, len(completedPositions))
	for _, p := range completedPositions {
		present[p] = true
	}

	tier := 0
	for {
		base := tier * BlockSize
		for p := base + 1; p <= base+BlockSize; p++ {
			if !present[p] {
				return tier
			}
		}
		tier++
	}
}
