package sjavs

// Team is one of the two fixed partnerships: Vit holds seats 1 and 3, Tit
// holds seats 2 and 4.
type Team string

const (
	TeamVit Team = "Vit"
	TeamTit Team = "Tit"
)

func TeamForSeat(seat int) Team {
	if seat%2 == 1 {
		return TeamVit
	}
	return TeamTit
}

func (t Team) Opponent() Team {
	if t == TeamVit {
		return TeamTit
	}
	return TeamVit
}
