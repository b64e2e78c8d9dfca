package sjavs

import (
	"reflect"
	"testing"
	"time"

	"sjavs-go/internal/game/common"
)

func TestComputeMeld(t *testing.T) {
	tests := []struct {
		name      string
		hand      []string
		wantLen   int
		wantSuits []common.Suit
	}{
		{
			name:      "permanent trumps count for every suit",
			hand:      []string{"JD", "JH", "QS", "7C", "8C", "9C", "AH", "KH"},
			wantLen:   6,
			wantSuits: []common.Suit{common.Clubs},
		},
		{
			name:      "tie set lists every best suit",
			hand:      []string{"JD", "JH", "7C", "8C", "9C", "7S", "8S", "9S"},
			wantLen:   5,
			wantSuits: []common.Suit{common.Clubs, common.Spades},
		},
		{
			name:      "no permanent trumps",
			hand:      []string{"AH", "KH", "TH", "9H", "8H", "7C", "8D", "AS"},
			wantLen:   5,
			wantSuits: []common.Suit{common.Hearts},
		},
		{
			name:      "short meld is not declarable",
			hand:      []string{"AH", "KH", "7C", "8C", "7D", "8D", "AS", "KS"},
			wantLen:   2,
			wantSuits: []common.Suit{common.Clubs, common.Diamonds, common.Hearts, common.Spades},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(1, "Anna", time.Now())
			p.Hand = cards(t, tc.hand...)

			m := p.ComputeMeld()
			if m.Length != tc.wantLen {
				t.Fatalf("meld length %d, want %d", m.Length, tc.wantLen)
			}
			if !reflect.DeepEqual(m.Suits, tc.wantSuits) {
				t.Fatalf("meld suits %v, want %v", m.Suits, tc.wantSuits)
			}
			if want := tc.wantLen >= 5; m.Declarable() != want {
				t.Fatalf("Declarable() = %v, want %v", m.Declarable(), want)
			}
		})
	}
}

func TestTakeAndHolds(t *testing.T) {
	p := NewPlayer(1, "Anna", time.Now())
	p.Hand = cards(t, "AH", "KH", "7C")

	if !p.Holds(card(t, "KH")) {
		t.Fatal("should hold KH")
	}
	if !p.Take(card(t, "KH")) {
		t.Fatal("Take(KH) should succeed")
	}
	if p.Holds(card(t, "KH")) {
		t.Fatal("KH should be gone after Take")
	}
	if p.Take(card(t, "KH")) {
		t.Fatal("second Take(KH) should fail")
	}
	if len(p.Hand) != 2 {
		t.Fatalf("hand has %d cards, want 2", len(p.Hand))
	}
}

func TestShowHand(t *testing.T) {
	p := NewPlayer(1, "Anna", time.Now())
	p.Hand = cards(t, "AH", "TC", "7S")

	want := "Anna's hand: AH, TC, 7S"
	if got := p.ShowHand(); got != want {
		t.Fatalf("ShowHand() = %q, want %q", got, want)
	}
}

func TestCanFollow(t *testing.T) {
	p := NewPlayer(1, "Anna", time.Now())
	p.Hand = cards(t, "7C", "8D")

	if p.CanFollow(card(t, "AH"), common.Spades) {
		t.Fatal("no hearts in hand, should not be able to follow")
	}
	p.Give(card(t, "JD"))
	if !p.CanFollow(card(t, "AH"), common.Spades) {
		t.Fatal("a permanent trump always follows")
	}
}
