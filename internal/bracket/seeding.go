package bracket

// StandardSeedOrder returns the 0-based seed ranks in bracket slot order for a bracket of
// the given size, folded so that the top two seeds land in opposite halves.
// For 8 that is 0 7 3 4 1 6 2 5.
func StandardSeedOrder(bracketSize int) []int {
	if bracketSize <= 0 {
		return []int{}
	}

	order := []int{0}
	for len(order) < bracketSize {
		next := make([]int, 0, len(order)*2)
		currentCount := len(order) * 2

		for _, seed := range order {
			next = append(next, seed, (currentCount-1)-seed)
		}
		order = next
	}
	return order
}

func generateRound1Pairs(bracketSize int, seeding Seeding) [][2]int {
	if bracketSize < 2 {
		return [][2]int{}
	}

	var slots []int
	if seeding == SeedingStandard {
		slots = StandardSeedOrder(bracketSize)
	} else {
		slots = make([]int, bracketSize)
		for i := range slots {
			slots[i] = i
		}
	}

	pairs := make([][2]int, 0, bracketSize/2)
	for i := 0; i < len(slots); i += 2 {
		pairs = append(pairs, [2]int{slots[i], slots[i+1]})
	}
	return pairs
}
