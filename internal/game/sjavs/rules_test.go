package sjavs

import (
	"testing"

	"sjavs-go/internal/game/common"
)

func card(t *testing.T, s string) common.Card {
	t.Helper()
	c, err := common.ParseCard(s)
	if err != nil {
		t.Fatalf("ParseCard(%q): %v", s, err)
	}
	return c
}

func cards(t *testing.T, ss ...string) []common.Card {
	t.Helper()
	out := make([]common.Card, 0, len(ss))
	for _, s := range ss {
		out = append(out, card(t, s))
	}
	return out
}

func TestPermanentTrumpOrder(t *testing.T) {
	weakest := []string{"JD", "JH", "JS", "JC", "QS", "QC"}
	prev := -1
	for _, s := range weakest {
		ord, ok := PermanentTrumpOrder(card(t, s))
		if !ok {
			t.Fatalf("%s should be a permanent trump", s)
		}
		if ord <= prev {
			t.Fatalf("%s: order %d not above previous %d", s, ord, prev)
		}
		prev = ord
	}

	for _, s := range []string{"QH", "QD", "AS", "7D", "KC"} {
		if IsPermanentTrump(card(t, s)) {
			t.Errorf("%s should not be a permanent trump", s)
		}
	}
}

func TestPointValues(t *testing.T) {
	for _, suit := range common.Suits {
		total := 0
		for r := common.Seven; r <= common.Ace; r++ {
			total += PointValue(common.Card{Rank: r, Suit: suit})
		}
		if total != 30 {
			t.Errorf("suit %s sums to %d, want 30", suit, total)
		}
	}

	deckTotal := 0
	d := NewDeck()
	for d.Len() > 0 {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("Deal: %v", err)
		}
		deckTotal += PointValue(c)
	}
	if deckTotal != 120 {
		t.Fatalf("deck sums to %d, want 120", deckTotal)
	}
}

func TestFollows(t *testing.T) {
	tests := []struct {
		name  string
		card  string
		lead  string
		trump common.Suit
		want  bool
	}{
		{"permanent trump follows anything", "QC", "AH", common.Spades, true},
		{"permanent trump follows trump lead", "JD", "AS", common.Spades, true},
		{"plain suit follows its lead", "7H", "AH", common.Spades, true},
		{"off suit does not follow", "7C", "AH", common.Spades, false},
		{"trump suit does not follow plain lead", "7S", "AH", common.Spades, false},
		{"trump lead obliges trump suit", "7S", "AS", common.Spades, true},
		{"permanent trump lead obliges trump suit", "7S", "JD", common.Spades, true},
		{"plain card of lead suit vs permanent trump lead", "7D", "JD", common.Spades, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Follows(card(t, tc.card), card(t, tc.lead), tc.trump)
			if got != tc.want {
				t.Fatalf("Follows(%s, %s, %s) = %v, want %v", tc.card, tc.lead, tc.trump, got, tc.want)
			}
		})
	}
}

func TestStrengthOrdering(t *testing.T) {
	trump := common.Hearts
	lead := card(t, "AD")

	// Each entry must be strictly stronger than the one before it.
	ladder := []string{"7C", "AS", "7D", "AD", "7H", "AH", "JD", "QC"}
	for i := 1; i < len(ladder); i++ {
		lo := strength(card(t, ladder[i-1]), lead, trump)
		hi := strength(card(t, ladder[i]), lead, trump)
		if hi <= lo {
			t.Errorf("%s (%d) should beat %s (%d) with trump %s on lead %s",
				ladder[i], hi, ladder[i-1], lo, trump, lead)
		}
	}
}
