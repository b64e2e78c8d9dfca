package sjavs

import (
	"strings"
	"time"

	"sjavs-go/internal/game/common"
)

// Player holds one seat at the table. Seats are fixed for the whole match;
// the hand is cleared and refilled each round.
type Player struct {
	Seat int
	Name string
	Hand []common.Card

	// UserID links the seat to a registered account for result attribution.
	// Zero for guests and bots.
	UserID int64
	IsBot  bool

	lastSeen time.Time
}

func NewPlayer(seat int, name string, now time.Time) *Player {
	return &Player{Seat: seat, Name: name, Hand: make([]common.Card, 0, 8), lastSeen: now}
}

func (p *Player) Touch(now time.Time) {
	p.lastSeen = now
}

func (p *Player) Idle(now time.Time) time.Duration {
	return now.Sub(p.lastSeen)
}

func (p *Player) Holds(c common.Card) bool {
	for _, h := range p.Hand {
		if h == c {
			return true
		}
	}
	return false
}

// Take removes c from the hand, reporting whether it was held.
func (p *Player) Take(c common.Card) bool {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) Give(c common.Card) {
	p.Hand = append(p.Hand, c)
}

// CanFollow reports whether any held card satisfies the lead obligation.
func (p *Player) CanFollow(lead common.Card, trump common.Suit) bool {
	for _, h := range p.Hand {
		if Follows(h, lead, trump) {
			return true
		}
	}
	return false
}

func (p *Player) ShowHand() string {
	cards := make([]string, 0, len(p.Hand))
	for _, c := range p.Hand {
		cards = append(cards, c.String())
	}
	return p.Name + "'s hand: " + strings.Join(cards, ", ")
}

// Meld is the result of the max-meld computation: the longest achievable
// trump length and every suit that achieves it (the tie set).
type Meld struct {
	Length int
	Suits  []common.Suit
}

func (m Meld) Has(s common.Suit) bool {
	for _, c := range m.Suits {
		if c == s {
			return true
		}
	}
	return false
}

// Declarable reports whether the meld is long enough to bid at all.
func (m Meld) Declarable() bool {
	return m.Length >= 5
}

// ComputeMeld recomputes the player's strongest declaration from the current
// hand. The permanent trumps in hand anchor a declaration in any suit, so
// their count is added to every plain-suit count. Never cached: the hand
// mutates every trick.
func (p *Player) ComputeMeld() Meld {
	permanent := 0
	plain := map[common.Suit]int{}
	for _, c := range p.Hand {
		if IsPermanentTrump(c) {
			permanent++
			continue
		}
		plain[c.Suit]++
	}

	best := 0
	for _, s := range common.Suits {
		if n := plain[s] + permanent; n > best {
			best = n
		}
	}

	m := Meld{Length: best}
	for _, s := range common.Suits {
		if plain[s]+permanent == best {
			m.Suits = append(m.Suits, s)
		}
	}
	return m
}
