package transport

import (
	"testing"

	"sjavs-go/internal/game/sjavs"
)

func TestHandshakeClaimsSeats(t *testing.T) {
	table := sjavs.NewTable()
	s := NewServer(table)

	seat, name := 0, ""
	if got := s.handle(&seat, &name, "Hallo, Eg eri Anna"); got != "P1" {
		t.Fatalf("handshake = %q, want P1", got)
	}
	if seat != 1 || name != "Anna" {
		t.Fatalf("session = seat %d name %q", seat, name)
	}

	seat2, name2 := 0, ""
	if got := s.handle(&seat2, &name2, "Hallo, Eg eri Bjorg"); got != "P2" {
		t.Fatalf("second handshake = %q, want P2", got)
	}
}

func TestCommandBeforeHandshake(t *testing.T) {
	s := NewServer(sjavs.NewTable())

	seat, name := 0, ""
	if got := s.handle(&seat, &name, "GU"); got != "Session reset. Please rejoin." {
		t.Fatalf("pre-handshake command = %q", got)
	}
}

func TestTableFull(t *testing.T) {
	table := sjavs.NewTable()
	s := NewServer(table)

	for i, n := range []string{"Anna", "Bjorg", "Carl", "Dani"} {
		seat, name := 0, ""
		if got := s.handle(&seat, &name, "Hallo, Eg eri "+n); got[0] != 'P' {
			t.Fatalf("join %d = %q", i, got)
		}
	}

	seat, name := 0, ""
	if got := s.handle(&seat, &name, "Hallo, Eg eri Eva"); got != "Table is full." {
		t.Fatalf("fifth join = %q", got)
	}
}

func TestCommandsRouteToClaimedSeat(t *testing.T) {
	table := sjavs.NewTable()
	s := NewServer(table)

	seats := make([]int, 4)
	names := make([]string, 4)
	for i, n := range []string{"Anna", "Bjorg", "Carl", "Dani"} {
		s.handle(&seats[i], &names[i], "Hallo, Eg eri "+n)
	}

	// The table is dealing after the fourth join; the split belongs to seat 4.
	if got := s.handle(&seats[3], &names[3], "split 12"); got != " " {
		t.Fatalf("split from seat 4 = %q, want a single space", got)
	}
	if got := s.handle(&seats[0], &names[0], "split 12"); got != "Cannot deal cards right now." {
		t.Fatalf("late split from seat 1 = %q", got)
	}
}
