package sjavs

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"sjavs-go/internal/game/common"
)

type Phase string

const (
	PhaseInit        Phase = "init"
	PhaseDeal        Phase = "deal"
	PhaseDeclaration Phase = "declaration"
	PhaseFirstCard   Phase = "first_card"
	PhasePlay        Phase = "play"
	PhaseEnd         Phase = "end"
)

const (
	// StartScore is each team's rubber score at match start; the rubber is
	// won by driving it to zero or below.
	StartScore = 24

	// DefaultIdleTimeout is how long a seated player may stay silent before
	// the whole match is force-reset.
	DefaultIdleTimeout = 60 * time.Second

	trickDisplayFor    = 4 * time.Second
	winnerHighlightFor = 2500 * time.Millisecond
	splitMin, splitMax = 10, 22
)

// BotSeater fills empty seats with automated players. Attached by the
// hosting layer; EnsureBots is invoked outside the table lock.
type BotSeater interface {
	EnsureBots(requested *int) string
	StopAll()
}

// SeatResult is one seat's line in a finished-rubber record.
type SeatResult struct {
	Seat   int
	Name   string
	UserID int64
	Team   Team
	Won    bool
}

// MatchRecord describes a finished rubber for result recording.
type MatchRecord struct {
	Winner    Team
	VitScore  int
	TitScore  int
	DoubleWin bool
	Rounds    int
	Seats     []SeatResult
}

// Table runs one live sjavs table: four fixed seats, a rubber tracked by two
// team scores counting down from 24, and the round state machine driving
// dealing, declaration, trick play and scoring. All command processing is
// serialized by the table mutex; checks always precede mutation.
type Table struct {
	mu  sync.Mutex
	now func() time.Time

	IdleTimeout time.Duration

	players   map[int]*Player
	mailboxes map[int]*mailbox

	phase  Phase
	dealer int
	turn   int

	deck  *Deck
	trick *Trick

	trumpSuit  common.Suit // empty until chosen
	trumpOwner int         // 0 until a declaration is accepted
	declTeam   Team
	declLength int
	declCount  int
	declSuits  []common.Suit // owner's candidate tie set at acceptance

	trickWinners []int
	scores       map[Team]int
	bonus        int
	gameOver     bool
	rounds       int

	lastTrick       []Play
	lastTrickExpire time.Time
	lastWinner      int
	highlightUntil  time.Time
	lastResetNotice string

	bots       BotSeater
	events     func(kind, message string)
	onMatchEnd func(MatchRecord)
}

func NewTable() *Table {
	return &Table{
		now:         time.Now,
		IdleTimeout: DefaultIdleTimeout,
		players:     map[int]*Player{},
		mailboxes:   map[int]*mailbox{},
		phase:       PhaseInit,
		scores:      map[Team]int{TeamVit: StartScore, TeamTit: StartScore},
	}
}

// Type implements game.Game.
func (t *Table) Type() string { return "sjavs" }

func (t *Table) AttachBots(b BotSeater) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bots = b
}

// SetEventSink registers a push-notification hook invoked for every
// broadcast. Mailboxes remain the authoritative delivery channel.
func (t *Table) SetEventSink(fn func(kind, message string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = fn
}

// SetOnMatchEnd registers a callback fired (on its own goroutine) when a
// rubber finishes.
func (t *Table) SetOnMatchEnd(fn func(MatchRecord)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMatchEnd = fn
}

func seatAfter(s int) int  { return s%4 + 1 }
func seatBefore(s int) int { return (s+2)%4 + 1 }

// Join seats a new player at the lowest free seat (1..4). Once the fourth
// seat fills, the first round starts with seat 1 dealing.
func (t *Table) Join(name string, userID int64, isBot bool) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// A pending timeout reset clears stale seats before the newcomer sits.
	t.checkIdleLocked()

	seat := 0
	for s := 1; s <= 4; s++ {
		if t.players[s] == nil {
			seat = s
			break
		}
	}
	if seat == 0 {
		return 0, ErrTableFull
	}

	p := NewPlayer(seat, name, t.now())
	p.UserID = userID
	p.IsBot = isBot
	t.players[seat] = p
	t.mailboxes[seat] = &mailbox{}
	t.lastResetNotice = ""
	t.broadcastLocked(fmt.Sprintf("%s joined as player %d.", name, seat))

	if len(t.players) == 4 && t.phase == PhaseInit {
		t.dealer = 1
		t.startDealLocked()
	}
	return seat, nil
}

// HandleLine parses one protocol line for a seat and processes the command.
// Parse failures map to the protocol's fixed rejection strings.
func (t *Table) HandleLine(seat int, line string) string {
	cmd, err := ParseLine(line)
	if err != nil {
		switch err {
		case ErrInvalidDeclaration:
			return "Invalid declaration"
		case ErrInvalidSuitChoice:
			return "Invalid suit"
		case ErrInvalidDealChoice:
			return "invalid split position"
		case ErrCardNotHeld:
			return "card not held"
		default:
			return "Unknown command."
		}
	}
	return t.Process(seat, cmd)
}

// Process is the single serialized entry point for every table command.
// The liveness check runs before normal dispatch: a detected timeout resets
// the whole match and supersedes the command just received.
func (t *Table) Process(seat int, cmd Command) string {
	t.mu.Lock()

	if msg, reset := t.checkIdleLocked(); reset {
		t.mu.Unlock()
		return msg
	}

	p := t.players[seat]
	if p == nil {
		msg := t.lastResetNotice
		t.mu.Unlock()
		if msg == "" {
			msg = "Session reset. Please rejoin."
		}
		return msg
	}
	p.Touch(t.now())

	if b, ok := cmd.(BotsCommand); ok {
		seater := t.bots
		t.mu.Unlock()
		if seater == nil {
			return "No bots available."
		}
		return seater.EnsureBots(b.Requested)
	}
	defer t.mu.Unlock()

	switch c := cmd.(type) {
	case UpdatesCommand:
		return t.drainLocked(seat)
	case ShowCommand:
		return p.ShowHand()
	case MaxMeldCommand:
		return describeMeld(p.ComputeMeld())
	case DealCommand:
		return t.handleDealLocked(p, c)
	case MeldCommand:
		return t.handleMeldLocked(p, c)
	case SuitCommand:
		return t.handleSuitLocked(p, c)
	case PlayCommand:
		return t.handlePlayLocked(p, c)
	default:
		return "Unknown command."
	}
}

func describeMeld(m Meld) string {
	if !m.Declarable() {
		return "Pass"
	}
	suits := make([]string, 0, len(m.Suits))
	for _, s := range m.Suits {
		suits = append(suits, string(s))
	}
	return fmt.Sprintf("%d in %s", m.Length, strings.Join(suits, " and "))
}

func (t *Table) drainLocked(seat int) string {
	mb := t.mailboxes[seat]
	if mb == nil || mb.Empty() {
		return "No new updates."
	}
	return strings.Join(mb.Drain(), "\n")
}

func (t *Table) broadcastLocked(msg string) {
	for _, mb := range t.mailboxes {
		mb.Append(msg)
	}
	if t.events != nil {
		t.events("broadcast", msg)
	}
}

func (t *Table) directLocked(seat int, msg string) {
	if mb := t.mailboxes[seat]; mb != nil {
		mb.Append(msg)
	}
}

// checkIdleLocked force-resets the match when any seated player has been
// silent past the idle timeout. Returns the reset notice when it fires.
func (t *Table) checkIdleLocked() (string, bool) {
	if len(t.players) == 0 {
		return "", false
	}
	now := t.now()
	for _, p := range t.players {
		if p.Idle(now) > t.IdleTimeout {
			t.resetLocked(fmt.Sprintf("%s timed out", p.Name))
			return t.lastResetNotice, true
		}
	}
	return "", false
}

// resetLocked discards the whole match: seats cleared, scores back to 24,
// phase to init. The notice supersedes whatever command triggered it.
func (t *Table) resetLocked(reason string) {
	t.players = map[int]*Player{}
	t.mailboxes = map[int]*mailbox{}
	t.phase = PhaseInit
	t.dealer = 0
	t.turn = 0
	t.deck = nil
	t.trick = nil
	t.clearDeclarationLocked()
	t.trickWinners = nil
	t.scores = map[Team]int{TeamVit: StartScore, TeamTit: StartScore}
	t.bonus = 0
	t.gameOver = false
	t.rounds = 0
	t.lastTrick = nil
	t.lastWinner = 0
	t.lastResetNotice = fmt.Sprintf("Table reset: %s. Please rejoin.", reason)
	if t.events != nil {
		t.events("reset", t.lastResetNotice)
	}
	if t.bots != nil {
		go t.bots.StopAll()
	}
}

func (t *Table) clearDeclarationLocked() {
	t.trumpSuit = ""
	t.trumpOwner = 0
	t.declTeam = ""
	t.declLength = 0
	t.declCount = 0
	t.declSuits = nil
}

// startDealLocked opens a fresh round with the current dealer: new shuffled
// deck, cleared hands, and the dealing choice handed to the dealer's
// neighbor.
func (t *Table) startDealLocked() {
	t.deck = NewDeck()
	t.deck.Shuffle()
	for _, p := range t.players {
		p.Hand = p.Hand[:0]
	}
	t.trick = nil
	t.clearDeclarationLocked()
	t.trickWinners = nil

	t.phase = PhaseDeal
	t.turn = seatBefore(t.dealer)
	splitter := t.players[t.turn]
	if splitter != nil {
		t.broadcastLocked(fmt.Sprintf("%s, choose 'split <%d-%d>' or 'banka'.", splitter.Name, splitMin, splitMax))
	}
}

func (t *Table) handleDealLocked(p *Player, c DealCommand) string {
	if t.phase != PhaseDeal {
		return "Cannot deal cards right now."
	}
	if p.Seat != t.turn {
		return "Not your turn"
	}

	if c.Banka {
		t.broadcastLocked("Deck unchanged.")
		if msg := t.dealHandsLocked(1, 8); msg != "" {
			return msg
		}
	} else {
		if c.Pos < splitMin || c.Pos > splitMax {
			return "invalid split position"
		}
		if err := t.deck.Cut(c.Pos); err != nil {
			return "invalid split position"
		}
		t.broadcastLocked(fmt.Sprintf("Deck split at %d.", c.Pos))
		if msg := t.dealHandsLocked(2, 4); msg != "" {
			return msg
		}
	}

	for s := 1; s <= 4; s++ {
		t.directLocked(s, "Received 8 cards.")
	}
	t.phase = PhaseDeclaration
	t.turn = seatAfter(t.dealer)
	t.promptDeclarerLocked()
	return " "
}

func (t *Table) dealHandsLocked(passes, perPass int) string {
	for pass := 0; pass < passes; pass++ {
		for off := 1; off <= 4; off++ {
			seat := (t.dealer+off-1)%4 + 1
			p := t.players[seat]
			for i := 0; i < perPass; i++ {
				card, err := t.deck.Deal()
				if err != nil {
					// Unreachable with a full 32-card deck; refuse to
					// continue with a short deal.
					return "deck exhausted"
				}
				p.Give(card)
			}
		}
	}
	return ""
}

func (t *Table) promptDeclarerLocked() {
	if p := t.players[t.turn]; p != nil {
		t.broadcastLocked(fmt.Sprintf("%s, it is your turn to declare.", p.Name))
	}
}

func (t *Table) handleMeldLocked(p *Player, c MeldCommand) string {
	if t.phase != PhaseDeclaration || t.declCount >= 4 {
		return "No declaration expected now."
	}
	if p.Seat != t.turn {
		return "Not your turn"
	}

	meld := p.ComputeMeld()
	switch {
	case c.N == 0 || !meld.Declarable():
		t.broadcastLocked(fmt.Sprintf("%s passes.", p.Name))
	case c.N >= 5 && c.N <= meld.Length && c.N > t.declLength:
		t.declLength = c.N
		t.trumpOwner = p.Seat
		t.declTeam = TeamForSeat(p.Seat)
		t.declSuits = meld.Suits
		t.broadcastLocked(fmt.Sprintf("%s declares %d.", p.Name, c.N))
	case c.N >= 5 && c.N <= meld.Length && c.N == t.declLength && meld.Has(common.Clubs):
		// Equal length only beats the table with Clubs; the trump is
		// pinned to Clubs right away.
		t.declLength = c.N
		t.trumpOwner = p.Seat
		t.declTeam = TeamForSeat(p.Seat)
		t.declSuits = []common.Suit{common.Clubs}
		t.broadcastLocked(fmt.Sprintf("%s declares %d Better.", p.Name, c.N))
	default:
		return "Invalid declaration"
	}

	t.declCount++
	t.turn = seatAfter(t.turn)

	if t.declCount >= 4 {
		if t.trumpOwner == 0 {
			t.broadcastLocked("No one declared. Redealing.")
			t.startDealLocked()
			return " "
		}
		t.turn = t.trumpOwner
		owner := t.players[t.trumpOwner]
		t.broadcastLocked(fmt.Sprintf("Declarations complete. %s picks the trump suit.", owner.Name))
		t.directLocked(t.trumpOwner, "What suit is your declaration?")
		return " "
	}

	t.promptDeclarerLocked()
	return " "
}

func (t *Table) handleSuitLocked(p *Player, c SuitCommand) string {
	if t.phase != PhaseDeclaration || t.declCount < 4 || t.trumpOwner == 0 || t.trumpSuit != "" {
		return "No suit choice expected now."
	}
	if p.Seat != t.trumpOwner {
		return "Not your turn"
	}

	// The choice is restricted to the tie set recorded when the declaration
	// was accepted; the hand is unchanged since then, so no recompute.
	valid := false
	for _, s := range t.declSuits {
		if s == c.Suit {
			valid = true
			break
		}
	}
	if !valid {
		return "Invalid suit"
	}

	t.trumpSuit = c.Suit
	t.trick = NewTrick(c.Suit)
	t.phase = PhaseFirstCard
	t.turn = seatAfter(t.dealer)
	t.broadcastLocked(fmt.Sprintf("The current trump is %s.", c.Suit.Name()))
	t.promptLeadLocked()
	return " "
}

func (t *Table) promptLeadLocked() {
	if p := t.players[t.turn]; p != nil {
		t.directLocked(t.turn, fmt.Sprintf("Play a card, %s!", p.Name))
	}
}

func (t *Table) handlePlayLocked(p *Player, c PlayCommand) string {
	if t.phase != PhaseFirstCard && t.phase != PhasePlay {
		return "not allowed"
	}
	if p.Seat != t.turn {
		return "not your turn"
	}

	if t.phase == PhaseFirstCard {
		if err := t.trick.PlayLead(p, c.Card); err != nil {
			return "card not held"
		}
		t.phase = PhasePlay
	} else {
		switch err := t.trick.PlayFollow(p, c.Card); err {
		case nil:
		case ErrCardNotHeld:
			return "card not held"
		default:
			return "not allowed"
		}
	}

	t.broadcastLocked(fmt.Sprintf("%d has played %s", p.Seat, c.Card))

	if len(t.trick.Plays) == 4 {
		t.resolveTrickLocked()
	} else {
		t.turn = seatAfter(t.turn)
		t.directLocked(t.turn, "Your turn!")
	}
	return "OK"
}

func (t *Table) resolveTrickLocked() {
	snapshot := append([]Play(nil), t.trick.Plays...)
	winner := t.trick.Resolve()
	t.trickWinners = append(t.trickWinners, winner)

	now := t.now()
	t.lastTrick = snapshot
	t.lastTrickExpire = now.Add(trickDisplayFor)
	t.lastWinner = winner
	t.highlightUntil = now.Add(winnerHighlightFor)

	t.broadcastLocked(fmt.Sprintf("Player %d won the trick.", winner))

	for _, p := range t.players {
		if len(p.Hand) > 0 {
			t.turn = winner
			t.phase = PhaseFirstCard
			t.promptLeadLocked()
			return
		}
	}
	t.completeRoundLocked()
}

// completeRoundLocked runs the scoring engine over the finished round and
// either ends the rubber or deals the next round.
func (t *Table) completeRoundLocked() {
	vit := t.trick.Points(TeamVit)
	tit := t.trick.Points(TeamTit)
	t.broadcastLocked(fmt.Sprintf("Round totals: Vit %d, Tit %d.", vit, tit))

	if t.declTeam == "" {
		// Should be impossible given the bidding protocol; void and redeal.
		t.broadcastLocked("Round voided. Redealing.")
		t.startDealLocked()
		return
	}

	declPts := vit
	defPts := tit
	if t.declTeam == TeamTit {
		declPts, defPts = tit, vit
	}

	singleHand := false
	if len(t.trickWinners) == 8 {
		singleHand = true
		for _, w := range t.trickWinners {
			if w != t.trickWinners[0] {
				singleHand = false
				break
			}
		}
		singleHand = singleHand && TeamForSeat(t.trickWinners[0]) == t.declTeam
	}

	res := scoreRound(declPts, defPts, t.trumpSuit == common.Clubs, singleHand)
	if res.Void {
		t.bonus += 2
		t.broadcastLocked(fmt.Sprintf("Drawn round at 60-60. Carryover bonus is now %d.", t.bonus))
		t.startDealLocked()
		return
	}

	winner := t.declTeam
	if !res.DeclarerWins {
		winner = t.declTeam.Opponent()
	}
	award := res.Award + t.bonus
	t.bonus = 0
	t.scores[winner] -= award
	t.rounds++
	t.broadcastLocked(fmt.Sprintf("%s wins the round for %d.", winner, award))

	if t.scores[winner] <= 0 {
		t.finishMatchLocked(winner)
		return
	}

	t.dealer = seatAfter(t.dealer)
	t.startDealLocked()
}

func (t *Table) finishMatchLocked(winner Team) {
	t.phase = PhaseEnd
	t.gameOver = true
	t.turn = 0

	double := t.scores[winner.Opponent()] == StartScore
	msg := fmt.Sprintf("Team %s wins the rubber!", winner)
	if double {
		msg += " Double victory!"
	}
	t.broadcastLocked(msg)

	if t.onMatchEnd != nil {
		rec := MatchRecord{
			Winner:    winner,
			VitScore:  t.scores[TeamVit],
			TitScore:  t.scores[TeamTit],
			DoubleWin: double,
			Rounds:    t.rounds,
		}
		for s := 1; s <= 4; s++ {
			if p := t.players[s]; p != nil {
				rec.Seats = append(rec.Seats, SeatResult{
					Seat:   p.Seat,
					Name:   p.Name,
					UserID: p.UserID,
					Team:   TeamForSeat(p.Seat),
					Won:    TeamForSeat(p.Seat) == winner,
				})
			}
		}
		go t.onMatchEnd(rec)
	}
}

// SeatName reports the display name occupying a seat; used by transports to
// detect stale sessions after a forced reset.
func (t *Table) SeatName(seat int) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := t.players[seat]
	if p == nil {
		return "", false
	}
	return p.Name, true
}

// ResetNotice returns the notice left behind by the last forced reset.
func (t *Table) ResetNotice() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastResetNotice
}
