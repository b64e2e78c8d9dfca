package sjavs

import (
	"strings"
	"testing"
)

func TestEnsureBotsFillsFreeSeats(t *testing.T) {
	tb := NewTable()
	m := NewBotManager(tb)
	tb.AttachBots(m)
	defer m.StopAll()

	seat, err := tb.Join("Anna", 0, false)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}

	if got := tb.Process(seat, BotsCommand{}); got != "Added 3 bots." {
		t.Fatalf("bots = %q, want %q", got, "Added 3 bots.")
	}
	for s := 2; s <= 4; s++ {
		if _, ok := tb.SeatName(s); !ok {
			t.Errorf("seat %d still empty", s)
		}
	}

	if got := tb.Process(seat, BotsCommand{}); got != "No free seats." {
		t.Fatalf("second bots = %q, want %q", got, "No free seats.")
	}
}

func TestEnsureBotsRespectsRequestedCount(t *testing.T) {
	tb := NewTable()
	m := NewBotManager(tb)
	tb.AttachBots(m)
	defer m.StopAll()

	if _, err := tb.Join("Anna", 0, false); err != nil {
		t.Fatalf("Join: %v", err)
	}

	two := 2
	if got := tb.Process(1, BotsCommand{Requested: &two}); got != "Added 2 bots." {
		t.Fatalf("bots 2 = %q, want %q", got, "Added 2 bots.")
	}
	if _, ok := tb.SeatName(4); ok {
		t.Fatal("seat 4 should still be free")
	}
}

func TestBotNamesWrapWithSuffix(t *testing.T) {
	m := NewBotManager(NewTable())

	seen := map[string]bool{}
	for i := 0; i < len(botNames)+2; i++ {
		name := m.nextName()
		if seen[name] {
			t.Fatalf("duplicate bot name %q", name)
		}
		seen[name] = true
	}
	if !seen["Bogi2"] || !seen["Eirikur2"] {
		t.Fatalf("wraparound names missing from %v", seen)
	}
	for name := range seen {
		if strings.TrimSpace(name) == "" {
			t.Fatal("empty bot name")
		}
	}
}
