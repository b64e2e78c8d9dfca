package models

import "errors"

var (
	ErrInvalidJSON  = errors.New("invalid json")
	ErrTableFull    = errors.New("table full")
	ErrStaleSession = errors.New("stale session")
	ErrEmptyCommand = errors.New("empty command")
	ErrEmptyName    = errors.New("empty name")
)
