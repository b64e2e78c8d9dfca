package sjavs

import (
	"errors"
	"testing"
	"time"

	"sjavs-go/internal/game/common"
)

func seatedPlayer(t *testing.T, seat int, hand ...string) *Player {
	t.Helper()
	p := NewPlayer(seat, "P", time.Now())
	p.Hand = cards(t, hand...)
	return p
}

func TestPlayLeadTakesCard(t *testing.T) {
	tr := NewTrick(common.Spades)
	p := seatedPlayer(t, 1, "AH", "7C")

	if err := tr.PlayLead(p, card(t, "AH")); err != nil {
		t.Fatalf("PlayLead: %v", err)
	}
	if tr.Lead == nil || *tr.Lead != card(t, "AH") {
		t.Fatal("lead not recorded")
	}
	if p.Holds(card(t, "AH")) {
		t.Fatal("lead card should leave the hand")
	}
}

func TestPlayLeadCardNotHeld(t *testing.T) {
	tr := NewTrick(common.Spades)
	p := seatedPlayer(t, 1, "AH")

	if err := tr.PlayLead(p, card(t, "KD")); !errors.Is(err, ErrCardNotHeld) {
		t.Fatalf("PlayLead = %v, want ErrCardNotHeld", err)
	}
	if len(tr.Plays) != 0 {
		t.Fatal("failed lead must not reach the table")
	}
}

func TestPlayFollowEnforcesSuit(t *testing.T) {
	tr := NewTrick(common.Spades)
	leader := seatedPlayer(t, 1, "AH")
	if err := tr.PlayLead(leader, card(t, "AH")); err != nil {
		t.Fatalf("PlayLead: %v", err)
	}

	follower := seatedPlayer(t, 2, "7H", "7C")
	if err := tr.PlayFollow(follower, card(t, "7C")); !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("off-suit play with hearts in hand = %v, want ErrNotAllowed", err)
	}
	if !follower.Holds(card(t, "7C")) {
		t.Fatal("rejected card must return to the hand")
	}
	if len(tr.Plays) != 1 {
		t.Fatal("rejected play must not reach the table")
	}

	if err := tr.PlayFollow(follower, card(t, "7H")); err != nil {
		t.Fatalf("legal follow: %v", err)
	}
}

func TestPlayFollowFreeDiscard(t *testing.T) {
	tr := NewTrick(common.Spades)
	leader := seatedPlayer(t, 1, "AH")
	if err := tr.PlayLead(leader, card(t, "AH")); err != nil {
		t.Fatalf("PlayLead: %v", err)
	}

	// No hearts and no permanent trumps: any card goes.
	follower := seatedPlayer(t, 2, "7C", "8D")
	if err := tr.PlayFollow(follower, card(t, "8D")); err != nil {
		t.Fatalf("free discard: %v", err)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		trump common.Suit
		plays []struct {
			seat int
			card string
		}
		winner int
	}{
		{
			name:  "highest of lead suit wins",
			trump: common.Spades,
			plays: []struct {
				seat int
				card string
			}{{1, "9H"}, {2, "AH"}, {3, "7H"}, {4, "KH"}},
			winner: 2,
		},
		{
			name:  "trump beats lead suit",
			trump: common.Spades,
			plays: []struct {
				seat int
				card string
			}{{1, "AH"}, {2, "KH"}, {3, "7S"}, {4, "TH"}},
			winner: 3,
		},
		{
			name:  "permanent trump beats declared trump",
			trump: common.Spades,
			plays: []struct {
				seat int
				card string
			}{{1, "AS"}, {2, "KS"}, {3, "JD"}, {4, "TS"}},
			winner: 3,
		},
		{
			name:  "QC is the strongest card",
			trump: common.Hearts,
			plays: []struct {
				seat int
				card string
			}{{1, "QS"}, {2, "QC"}, {3, "JC"}, {4, "AH"}},
			winner: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTrick(tc.trump)
			for i, pl := range tc.plays {
				p := seatedPlayer(t, pl.seat, pl.card)
				var err error
				if i == 0 {
					err = tr.PlayLead(p, card(t, pl.card))
				} else {
					err = tr.PlayFollow(p, card(t, pl.card))
				}
				if err != nil {
					t.Fatalf("play %d (%s): %v", i, pl.card, err)
				}
			}

			winner := tr.Resolve()
			if winner != tc.winner {
				t.Fatalf("winner = seat %d, want seat %d", winner, tc.winner)
			}
			pile := tr.Piles[TeamForSeat(tc.winner)]
			if len(pile) != 4 {
				t.Fatalf("winner pile has %d cards, want 4", len(pile))
			}
			if len(tr.Plays) != 0 || tr.Lead != nil {
				t.Fatal("trick must be cleared after Resolve")
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tr := NewTrick(common.Spades)
	tr.Piles[TeamVit] = cards(t, "AH", "TH", "KH", "QH") // 11+10+4+3
	tr.Piles[TeamTit] = cards(t, "7C", "8C", "9C", "JC") // 0+0+0+2

	if got := tr.Points(TeamVit); got != 28 {
		t.Errorf("Vit points = %d, want 28", got)
	}
	if got := tr.Points(TeamTit); got != 2 {
		t.Errorf("Tit points = %d, want 2", got)
	}
}
