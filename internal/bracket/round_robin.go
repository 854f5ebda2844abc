package bracket

// Every pair meets once. Round robin is a single logical phase, so everything sits in
// round 1 and nothing advances.
func generateRoundRobin(ordered []Participant) []Match {
	n := len(ordered)
	matches := make([]Match, 0, n*(n-1)/2)

	matchNum := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			matchNum++
			matches = append(matches, Match{
				Round:          1,
				MatchNum:       matchNum,
				TempID:         tempID(roundRobinPrefix, 1, matchNum),
				BracketType:    Winners,
				Participant1ID: participantAt(ordered, i),
				Participant2ID: participantAt(ordered, j),
			})
		}
	}

	return matches
}
