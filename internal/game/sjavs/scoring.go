package sjavs

// roundResult is the verdict of the scoring table for one completed round.
type roundResult struct {
	// Void marks a 60-60 draw: no score change, next round's award grows.
	Void bool
	// DeclarerWins tells which side the award goes to.
	DeclarerWins bool
	// Award is the base amount subtracted from the winning side's score,
	// before any pending carryover bonus.
	Award int
}

// scoreRound applies the rubber-scoring table. declPts is the declaring
// team's trick points, clubs whether the trump suit was Clubs, singleHand
// whether one player of the declaring team won all eight tricks alone.
// declPts+defPts must equal 120.
func scoreRound(declPts, defPts int, clubs, singleHand bool) roundResult {
	pick := func(c, plain int) int {
		if clubs {
			return c
		}
		return plain
	}

	switch {
	case declPts == 60 && defPts == 60:
		return roundResult{Void: true}
	case singleHand:
		return roundResult{DeclarerWins: true, Award: pick(24, 16)}
	case declPts == 120:
		return roundResult{DeclarerWins: true, Award: pick(16, 12)}
	case declPts >= 90:
		return roundResult{DeclarerWins: true, Award: pick(8, 4)}
	case declPts >= 61:
		return roundResult{DeclarerWins: true, Award: pick(4, 2)}
	case declPts >= 31:
		return roundResult{DeclarerWins: false, Award: pick(8, 4)}
	case declPts == 0:
		// Defenders swept every trick.
		return roundResult{DeclarerWins: false, Award: 16}
	default: // 1..30
		return roundResult{DeclarerWins: false, Award: pick(16, 8)}
	}
}
