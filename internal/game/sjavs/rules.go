package sjavs

import "sjavs-go/internal/game/common"

// The six permanent trumps outrank every other card no matter which suit is
// declared. Strength grows with the index: JD < JH < JS < JC < QS < QC.
var permanentTrumps = []common.Card{
	{Rank: common.Jack, Suit: common.Diamonds},
	{Rank: common.Jack, Suit: common.Hearts},
	{Rank: common.Jack, Suit: common.Spades},
	{Rank: common.Jack, Suit: common.Clubs},
	{Rank: common.Queen, Suit: common.Spades},
	{Rank: common.Queen, Suit: common.Clubs},
}

func IsPermanentTrump(c common.Card) bool {
	_, ok := PermanentTrumpOrder(c)
	return ok
}

// PermanentTrumpOrder returns the card's position in the permanent trump
// hierarchy (0..5, higher wins) and whether the card is a permanent trump.
func PermanentTrumpOrder(c common.Card) (int, bool) {
	for i, t := range permanentTrumps {
		if t == c {
			return i, true
		}
	}
	return 0, false
}

// RankValue is the trick-comparison value of a non-permanent-trump card,
// ace counted highest.
func RankValue(c common.Card) int {
	return int(c.Rank)
}

// PointValue is the scoring value of a card. Each suit sums to 30, the full
// deck to 120.
func PointValue(c common.Card) int {
	switch c.Rank {
	case common.Ace:
		return 11
	case common.Ten:
		return 10
	case common.King:
		return 4
	case common.Queen:
		return 3
	case common.Jack:
		return 2
	default:
		return 0
	}
}

// IsTrump reports whether c belongs to the trump family for the declared suit.
func IsTrump(c common.Card, trump common.Suit) bool {
	return IsPermanentTrump(c) || c.Suit == trump
}

// Follows reports whether playing c satisfies the obligation set by the lead
// card. Leading a trump obliges trumps; leading a plain suit obliges that
// plain suit (permanent trumps never count as plain-suit cards).
func Follows(c, lead common.Card, trump common.Suit) bool {
	if IsPermanentTrump(c) {
		return true
	}
	if IsTrump(lead, trump) {
		return c.Suit == trump
	}
	return c.Suit == lead.Suit
}

// strength builds the composite comparison key used to pick a trick winner:
// permanent trumps above declared trumps, declared trumps above cards that
// followed the lead, and everything else below. Within a band, higher rank
// (or permanent trump order) wins.
func strength(c, lead common.Card, trump common.Suit) int {
	if ord, ok := PermanentTrumpOrder(c); ok {
		return 300 + ord
	}
	if c.Suit == trump {
		return 200 + RankValue(c)
	}
	if c.Suit == lead.Suit && !IsTrump(lead, trump) {
		return 100 + RankValue(c)
	}
	return RankValue(c)
}
