package sjavs

import "sjavs-go/internal/game/common"

// Play is one card on the table, tagged with the seat that played it.
type Play struct {
	Seat int
	Card common.Card
}

// Trick tracks the cards of the current round of four and the two team
// piles that collect resolved tricks for the rest of the round.
type Trick struct {
	Trump common.Suit
	Lead  *common.Card
	Plays []Play
	Piles map[Team][]common.Card
}

func NewTrick(trump common.Suit) *Trick {
	return &Trick{
		Trump: trump,
		Plays: make([]Play, 0, 4),
		Piles: map[Team][]common.Card{TeamVit: {}, TeamTit: {}},
	}
}

// PlayLead takes the card from the player's hand and sets it as the trick's
// lead. The lead defines the follow obligation for the rest of the trick.
func (t *Trick) PlayLead(p *Player, c common.Card) error {
	if !p.Take(c) {
		return ErrCardNotHeld
	}
	t.Lead = &c
	t.Plays = append(t.Plays, Play{Seat: p.Seat, Card: c})
	return nil
}

// PlayFollow takes the card from the player's hand if the play is legal:
// the card must follow the lead, or the hand must hold nothing that could.
// An illegal play puts the card back and fails without consuming the turn.
func (t *Trick) PlayFollow(p *Player, c common.Card) error {
	if t.Lead == nil {
		return ErrNotAllowed
	}
	if !p.Take(c) {
		return ErrCardNotHeld
	}
	if !Follows(c, *t.Lead, t.Trump) && p.CanFollow(*t.Lead, t.Trump) {
		p.Give(c)
		return ErrNotAllowed
	}
	t.Plays = append(t.Plays, Play{Seat: p.Seat, Card: c})
	return nil
}

// Resolve picks the winner of a completed trick, moves all four cards to the
// winning team's pile and clears the trick for the next lead. Returns the
// winner's seat.
func (t *Trick) Resolve() int {
	best := 0
	for i := 1; i < len(t.Plays); i++ {
		if strength(t.Plays[i].Card, *t.Lead, t.Trump) > strength(t.Plays[best].Card, *t.Lead, t.Trump) {
			best = i
		}
	}
	winner := t.Plays[best].Seat

	team := TeamForSeat(winner)
	for _, play := range t.Plays {
		t.Piles[team] = append(t.Piles[team], play.Card)
	}
	t.Plays = t.Plays[:0]
	t.Lead = nil
	return winner
}

// Points sums the scoring value of a team's pile.
func (t *Trick) Points(team Team) int {
	total := 0
	for _, c := range t.Piles[team] {
		total += PointValue(c)
	}
	return total
}
