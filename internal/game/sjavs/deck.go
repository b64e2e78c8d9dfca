package sjavs

import "sjavs-go/internal/game/common"

const DeckSize = 32

// Deck is the 32-card sjavs deck (ranks 7..A in four suits), owned by the
// active round.
type Deck struct {
	cards []common.Card
}

func NewDeck() *Deck {
	cards := make([]common.Card, 0, DeckSize)
	for _, s := range common.Suits {
		for r := common.Seven; r <= common.Ace; r++ {
			cards = append(cards, common.Card{Rank: r, Suit: s})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) Shuffle() {
	common.Shuffle(d.cards)
}

// Cut rotates the deck at index k, as done by the "split" dealing choice.
func (d *Deck) Cut(k int) error {
	if k < 0 || k >= len(d.cards) {
		return ErrInvalidCut
	}
	d.cards = append(d.cards[k:], d.cards[:k]...)
	return nil
}

// Deal pops one card from the top. With a full 32-card deal this can never
// run dry mid-round; the guard protects against invariant violations.
func (d *Deck) Deal() (common.Card, error) {
	if len(d.cards) == 0 {
		return common.Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}
