package sjavs

import "errors"

var (
	ErrDeckExhausted      = errors.New("deck exhausted")
	ErrInvalidCut         = errors.New("invalid cut index")
	ErrCardNotHeld        = errors.New("card not held")
	ErrNotAllowed         = errors.New("not allowed")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrWrongPhase         = errors.New("wrong phase")
	ErrInvalidDeclaration = errors.New("invalid declaration")
	ErrInvalidSuitChoice  = errors.New("invalid suit choice")
	ErrInvalidDealChoice  = errors.New("invalid deal choice")
	ErrTableFull          = errors.New("table full")
	ErrStaleSession       = errors.New("stale session")
	ErrUnknownCommand     = errors.New("unknown command")
)
