package sjavs

import (
	"time"
)

// PlayerStatus is one seat in the public snapshot. Ping is seconds since the
// seat's last command; OK marks a client polling at a healthy rate.
type PlayerStatus struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Ping float64 `json:"ping"`
	OK   bool    `json:"ok"`
	Bot  bool    `json:"bot"`
}

// TableSlot is one card currently on the table, tagged with its owner.
type TableSlot struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Card string `json:"card"`
}

// TrickSlot is one card of the most recently resolved trick, kept briefly
// for display.
type TrickSlot struct {
	ID   int    `json:"id"`
	Card string `json:"card"`
}

// Snapshot is the per-seat view of the table served by the state endpoint.
// Only the requesting seat's hand is revealed.
type Snapshot struct {
	Scoreboard        map[string]int `json:"scoreboard"`
	CurrentTurn       int            `json:"current_turn"`
	Trump             string         `json:"trump,omitempty"`
	Phase             string         `json:"phase"`
	Players           []PlayerStatus `json:"players"`
	TableCards        []string       `json:"table_cards"`
	TableSlots        []TableSlot    `json:"table_slots"`
	Hand              []string       `json:"hand"`
	LastWinner        int            `json:"last_winner"`
	HighlightUntil    float64        `json:"highlight_until"`
	RecentTrick       []TrickSlot    `json:"recent_trick"`
	RecentTrickExpire float64        `json:"recent_trick_expire"`
	Bonus             int            `json:"bonus"`
	GameOver          bool           `json:"game_over"`
}

const healthyPollInterval = 700 * time.Millisecond

// SnapshotFor builds the state view for a seat. Returns ErrStaleSession when
// the seat is no longer occupied (e.g. after a forced reset).
func (t *Table) SnapshotFor(seat int) (*Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	me := t.players[seat]
	if me == nil {
		return nil, ErrStaleSession
	}

	now := t.now()
	snap := &Snapshot{
		// Scores can go negative internally; display clamps at zero.
		Scoreboard: map[string]int{
			string(TeamVit): clampScore(t.scores[TeamVit]),
			string(TeamTit): clampScore(t.scores[TeamTit]),
		},
		CurrentTurn:    t.turn,
		Phase:          string(t.phase),
		TableCards:     []string{},
		TableSlots:     []TableSlot{},
		RecentTrick:    []TrickSlot{},
		LastWinner:     t.lastWinner,
		HighlightUntil: unixSeconds(t.highlightUntil),
		Bonus:          t.bonus,
		GameOver:       t.gameOver,
	}
	if t.trumpSuit != "" {
		snap.Trump = string(t.trumpSuit)
	}

	for s := 1; s <= 4; s++ {
		p := t.players[s]
		if p == nil {
			continue
		}
		idle := p.Idle(now)
		snap.Players = append(snap.Players, PlayerStatus{
			ID:   s,
			Name: p.Name,
			Ping: idle.Seconds(),
			OK:   idle <= healthyPollInterval,
			Bot:  p.IsBot,
		})
	}

	if t.trick != nil && len(t.trick.Plays) > 0 {
		for _, play := range t.trick.Plays {
			snap.TableCards = append(snap.TableCards, play.Card.String())
			name := ""
			if p := t.players[play.Seat]; p != nil {
				name = p.Name
			}
			snap.TableSlots = append(snap.TableSlots, TableSlot{ID: play.Seat, Name: name, Card: play.Card.String()})
		}
	} else if len(t.lastTrick) > 0 {
		if now.Before(t.lastTrickExpire) {
			for _, play := range t.lastTrick {
				snap.RecentTrick = append(snap.RecentTrick, TrickSlot{ID: play.Seat, Card: play.Card.String()})
			}
			snap.RecentTrickExpire = unixSeconds(t.lastTrickExpire)
		} else {
			t.lastTrick = nil
		}
	}

	for _, c := range me.Hand {
		snap.Hand = append(snap.Hand, c.String())
	}
	return snap, nil
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	return s
}

func unixSeconds(ts time.Time) float64 {
	if ts.IsZero() {
		return 0
	}
	return float64(ts.UnixNano()) / float64(time.Second)
}
