package common

import (
	"fmt"
	"strings"
)

type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank uses the trick-taking convention: ace is high.
type Rank int

const (
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

func (c Card) String() string {
	var r string
	switch c.Rank {
	case Ten:
		r = "T"
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	case Ace:
		r = "A"
	default:
		r = fmt.Sprintf("%d", int(c.Rank))
	}
	return r + string(c.Suit)
}

func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card")
	}
	suit := Suit(s[1:])
	var r Rank
	switch s[:1] {
	case "A":
		r = Ace
	case "K":
		r = King
	case "Q":
		r = Queen
	case "J":
		r = Jack
	case "T":
		r = Ten
	case "9":
		r = Nine
	case "8":
		r = Eight
	case "7":
		r = Seven
	default:
		return Card{}, fmt.Errorf("invalid rank")
	}
	switch suit {
	case Spades, Hearts, Diamonds, Clubs:
	default:
		return Card{}, fmt.Errorf("invalid suit")
	}
	return Card{Rank: r, Suit: suit}, nil
}

func ParseSuit(s string) (Suit, error) {
	switch Suit(strings.TrimSpace(strings.ToUpper(s))) {
	case Spades:
		return Spades, nil
	case Hearts:
		return Hearts, nil
	case Diamonds:
		return Diamonds, nil
	case Clubs:
		return Clubs, nil
	default:
		return "", fmt.Errorf("invalid suit")
	}
}

func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spades"
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return string(s)
	}
}
