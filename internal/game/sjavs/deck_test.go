package sjavs

import (
	"errors"
	"testing"

	"sjavs-go/internal/game/common"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if d.Len() != DeckSize {
		t.Fatalf("deck has %d cards, want %d", d.Len(), DeckSize)
	}

	seen := map[common.Card]bool{}
	for d.Len() > 0 {
		c, err := d.Deal()
		if err != nil {
			t.Fatalf("Deal: %v", err)
		}
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("saw %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDeckCut(t *testing.T) {
	d := NewDeck()
	var order []common.Card
	order = append(order, d.cards...)

	if err := d.Cut(12); err != nil {
		t.Fatalf("Cut(12): %v", err)
	}
	if d.Len() != DeckSize {
		t.Fatalf("cut changed deck size to %d", d.Len())
	}
	top, err := d.Deal()
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	if top != order[12] {
		t.Fatalf("after Cut(12) top is %s, want %s", top, order[12])
	}
}

func TestDeckCutOutOfRange(t *testing.T) {
	d := NewDeck()
	for _, k := range []int{-1, 32, 100} {
		if err := d.Cut(k); !errors.Is(err, ErrInvalidCut) {
			t.Errorf("Cut(%d) = %v, want ErrInvalidCut", k, err)
		}
	}
}

func TestDeckExhaustion(t *testing.T) {
	d := NewDeck()
	for i := 0; i < DeckSize; i++ {
		if _, err := d.Deal(); err != nil {
			t.Fatalf("Deal %d: %v", i, err)
		}
	}
	if _, err := d.Deal(); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("Deal on empty deck = %v, want ErrDeckExhausted", err)
	}
}
