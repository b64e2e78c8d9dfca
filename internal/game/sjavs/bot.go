package sjavs

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"sjavs-go/internal/game/common"
)

var botRandMu sync.Mutex
var botRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// SendFunc delivers one raw protocol line on behalf of the bot's seat and
// returns the table's response.
type SendFunc func(line string) string

// BotBrain is an automated player that speaks the same text protocol as a
// human client: it polls its mailbox, reacts to prompts, declares its true
// max meld and plays random-but-legal cards.
type BotBrain struct {
	Name string
	Seat int

	send SendFunc
	poll time.Duration

	trump      common.Suit
	hand       []common.Card
	trick      []Play
	lastSuits  []common.Suit
	mustChoose bool

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewBotBrain(name string, seat int, send SendFunc) *BotBrain {
	return &BotBrain{
		Name:       name,
		Seat:       seat,
		send:       send,
		poll:       200 * time.Millisecond,
		mustChoose: true,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

func (b *BotBrain) Start() {
	go b.run()
}

func (b *BotBrain) Stop() {
	b.stopOnce.Do(func() { close(b.stopCh) })
	<-b.doneCh
}

func (b *BotBrain) run() {
	defer close(b.doneCh)
	ticker := time.NewTicker(b.poll)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopCh:
			return
		case <-ticker.C:
		}

		text := strings.TrimSpace(b.send("GU"))
		if text == "" || text == "No new updates." {
			continue
		}
		if strings.HasPrefix(text, "Table reset") {
			return
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				b.handleUpdate(line)
			}
		}
	}
}

func (b *BotBrain) handleUpdate(line string) {
	switch {
	case strings.Contains(line, "has played"):
		b.recordPlay(line)
	case strings.Contains(line, "won the trick"):
		b.trick = b.trick[:0]
	case strings.HasPrefix(line, "Round totals"):
		b.hand = nil
		b.trick = nil
		b.trump = ""
		b.mustChoose = true
	case strings.HasPrefix(line, "The current trump is"):
		b.readTrump(line)
	case strings.HasPrefix(line, "Received 8 cards"):
		b.refreshHand()
	case strings.Contains(line, "choose 'split") && b.mustChoose && strings.HasPrefix(line, b.Name+","):
		b.chooseDeal()
	case strings.Contains(line, "turn to declare") && strings.HasPrefix(line, b.Name+","):
		b.declare()
	case line == "What suit is your declaration?":
		b.chooseSuit()
	case strings.HasPrefix(line, "Play a card") || line == "Your turn!":
		b.playCard()
	case strings.HasPrefix(line, "Declarations complete"):
		b.trick = b.trick[:0]
	}
}

func (b *BotBrain) recordPlay(line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return
	}
	seat, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	card, err := common.ParseCard(fields[len(fields)-1])
	if err != nil {
		return
	}
	b.trick = append(b.trick, Play{Seat: seat, Card: card})
	if seat == b.Seat {
		b.removeFromHand(card)
	}
}

func (b *BotBrain) readTrump(line string) {
	fields := strings.Fields(line)
	name := strings.TrimSuffix(fields[len(fields)-1], ".")
	if name == "" {
		return
	}
	if s, err := common.ParseSuit(name[:1]); err == nil {
		b.trump = s
	}
}

func (b *BotBrain) refreshHand() {
	resp := b.send("show")
	_, after, found := strings.Cut(resp, ": ")
	if !found {
		return
	}
	b.hand = b.hand[:0]
	for _, code := range strings.Split(after, ",") {
		if c, err := common.ParseCard(code); err == nil {
			b.hand = append(b.hand, c)
		}
	}
}

func (b *BotBrain) chooseDeal() {
	b.mustChoose = false
	botRandMu.Lock()
	banka := botRand.Intn(2) == 0
	pos := splitMin + botRand.Intn(splitMax-splitMin+1)
	botRandMu.Unlock()
	if banka {
		b.send("banka")
		return
	}
	b.send("split " + strconv.Itoa(pos))
}

func (b *BotBrain) declare() {
	summary := strings.TrimSpace(b.send("maxmeld"))
	if summary == "Pass" {
		b.send("M 0")
		return
	}

	fields := strings.Fields(summary)
	length, err := strconv.Atoi(fields[0])
	if err != nil || length < 5 {
		b.send("M 0")
		return
	}
	b.lastSuits = b.lastSuits[:0]
	for _, f := range fields[1:] {
		if s, perr := common.ParseSuit(f); perr == nil {
			b.lastSuits = append(b.lastSuits, s)
		}
	}

	if resp := b.send("M " + strconv.Itoa(length)); strings.Contains(resp, "Invalid") {
		b.send("M 0")
	}
}

func (b *BotBrain) chooseSuit() {
	suit := common.Clubs
	if len(b.lastSuits) > 0 {
		suit = b.lastSuits[0]
		for _, s := range b.lastSuits {
			if s == common.Clubs {
				suit = common.Clubs
				break
			}
		}
	}
	if resp := b.send("S " + string(suit)); strings.Contains(resp, "Invalid") {
		for _, s := range common.Suits {
			if !strings.Contains(b.send("S "+string(s)), "Invalid") {
				suit = s
				break
			}
		}
	}
	b.trump = suit
}

func (b *BotBrain) legalCards() []common.Card {
	if len(b.trick) == 0 || b.trump == "" {
		return append([]common.Card(nil), b.hand...)
	}
	lead := b.trick[0].Card
	var legal []common.Card
	for _, c := range b.hand {
		if Follows(c, lead, b.trump) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return append([]common.Card(nil), b.hand...)
	}
	return legal
}

func (b *BotBrain) playCard() {
	if len(b.hand) == 0 {
		b.refreshHand()
		if len(b.hand) == 0 {
			return
		}
	}

	options := b.legalCards()
	botRandMu.Lock()
	botRand.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	botRandMu.Unlock()

	// The table is authoritative: retry on rejection, resync on desync.
	tryAll := append(options, b.hand...)
	for _, c := range tryAll {
		resp := strings.TrimSpace(b.send("P " + c.String()))
		if resp == "OK" {
			b.removeFromHand(c)
			b.trick = append(b.trick, Play{Seat: b.Seat, Card: c})
			return
		}
		if resp == "card not held" {
			b.refreshHand()
		}
	}
}

func (b *BotBrain) removeFromHand(card common.Card) {
	for i, c := range b.hand {
		if c == card {
			b.hand = append(b.hand[:i], b.hand[i+1:]...)
			return
		}
	}
}
