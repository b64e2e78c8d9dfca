package sjavs

import (
	"strconv"
	"strings"

	"sjavs-go/internal/game/common"
)

// Command is the closed set of inbound table commands. Transports parse raw
// lines at the boundary; the table itself never inspects protocol strings.
type Command interface {
	isCommand()
}

// MeldCommand is `M <n>`: a trump-length declaration (0 passes).
type MeldCommand struct {
	N int
}

// SuitCommand is `S <suit>`: the declaration winner's trump suit choice.
type SuitCommand struct {
	Suit common.Suit
}

// DealCommand is `split <n>` or `banka`: the dealing choice made by the
// dealer's neighbor.
type DealCommand struct {
	Banka bool
	Pos   int
}

// PlayCommand is `P <card>`.
type PlayCommand struct {
	Card common.Card
}

// UpdatesCommand is `GU`: drain the caller's mailbox.
type UpdatesCommand struct{}

// ShowCommand is `show`: describe the caller's hand.
type ShowCommand struct{}

// MaxMeldCommand is `maxmeld`: report the caller's strongest declaration.
type MaxMeldCommand struct{}

// BotsCommand is `bots [n]`: fill empty seats with bots.
type BotsCommand struct {
	Requested *int
}

func (MeldCommand) isCommand()    {}
func (SuitCommand) isCommand()    {}
func (DealCommand) isCommand()    {}
func (PlayCommand) isCommand()    {}
func (UpdatesCommand) isCommand() {}
func (ShowCommand) isCommand()    {}
func (MaxMeldCommand) isCommand() {}
func (BotsCommand) isCommand()    {}

// ParseLine turns one protocol line into a Command. The caller's seat has
// already been resolved by the transport; only the command body is parsed
// here.
func ParseLine(line string) (Command, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return nil, ErrUnknownCommand
	}

	switch fields[0] {
	case "M":
		if len(fields) != 2 {
			return nil, ErrInvalidDeclaration
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, ErrInvalidDeclaration
		}
		return MeldCommand{N: n}, nil
	case "S":
		if len(fields) != 2 {
			return nil, ErrInvalidSuitChoice
		}
		suit, err := common.ParseSuit(fields[1])
		if err != nil {
			return nil, ErrInvalidSuitChoice
		}
		return SuitCommand{Suit: suit}, nil
	case "split":
		if len(fields) != 2 {
			return nil, ErrInvalidDealChoice
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, ErrInvalidDealChoice
		}
		return DealCommand{Pos: n}, nil
	case "banka":
		if len(fields) != 1 {
			return nil, ErrInvalidDealChoice
		}
		return DealCommand{Banka: true}, nil
	case "P":
		if len(fields) != 2 {
			return nil, ErrCardNotHeld
		}
		card, err := common.ParseCard(fields[1])
		if err != nil {
			return nil, ErrCardNotHeld
		}
		return PlayCommand{Card: card}, nil
	case "GU":
		return UpdatesCommand{}, nil
	case "show":
		return ShowCommand{}, nil
	case "maxmeld":
		return MaxMeldCommand{}, nil
	case "bots":
		switch len(fields) {
		case 1:
			return BotsCommand{}, nil
		case 2:
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 || n > 4 {
				return nil, ErrUnknownCommand
			}
			return BotsCommand{Requested: &n}, nil
		default:
			return nil, ErrUnknownCommand
		}
	default:
		return nil, ErrUnknownCommand
	}
}
