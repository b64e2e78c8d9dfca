package sjavs

import "testing"

func TestScoreRound(t *testing.T) {
	tests := []struct {
		name       string
		declPts    int
		clubs      bool
		singleHand bool
		void       bool
		declWins   bool
		award      int
	}{
		{name: "draw at 60-60", declPts: 60, void: true},
		{name: "draw at 60-60 clubs", declPts: 60, clubs: true, void: true},

		{name: "single hand sweep clubs", declPts: 120, clubs: true, singleHand: true, declWins: true, award: 24},
		{name: "single hand sweep plain", declPts: 120, singleHand: true, declWins: true, award: 16},

		{name: "team sweep clubs", declPts: 120, clubs: true, declWins: true, award: 16},
		{name: "team sweep plain", declPts: 120, declWins: true, award: 12},

		{name: "90 clubs", declPts: 90, clubs: true, declWins: true, award: 8},
		{name: "90 plain", declPts: 90, declWins: true, award: 4},
		{name: "119 plain", declPts: 119, declWins: true, award: 4},

		{name: "61 clubs", declPts: 61, clubs: true, declWins: true, award: 4},
		{name: "61 plain", declPts: 61, declWins: true, award: 2},
		{name: "89 plain", declPts: 89, declWins: true, award: 2},

		{name: "59 clubs goes to defenders", declPts: 59, clubs: true, award: 8},
		{name: "59 plain goes to defenders", declPts: 59, award: 4},
		{name: "31 plain goes to defenders", declPts: 31, award: 4},

		{name: "30 clubs", declPts: 30, clubs: true, award: 16},
		{name: "30 plain", declPts: 30, award: 8},
		{name: "1 plain", declPts: 1, award: 8},

		{name: "defender sweep clubs", declPts: 0, clubs: true, award: 16},
		{name: "defender sweep plain", declPts: 0, award: 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := scoreRound(tc.declPts, 120-tc.declPts, tc.clubs, tc.singleHand)
			if res.Void != tc.void {
				t.Fatalf("Void = %v, want %v", res.Void, tc.void)
			}
			if tc.void {
				return
			}
			if res.DeclarerWins != tc.declWins {
				t.Fatalf("DeclarerWins = %v, want %v", res.DeclarerWins, tc.declWins)
			}
			if res.Award != tc.award {
				t.Fatalf("Award = %d, want %d", res.Award, tc.award)
			}
		})
	}
}
