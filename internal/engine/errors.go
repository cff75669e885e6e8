package engine

import "errors"

// Expected failure conditions for the public operations. Callers match
// with errors.Is; anything outside this set is a programming error.
var (
	ErrUnknownUnitType      = errors.New("unknown unit type")
	ErrIllegalLocation      = errors.New("illegal location")
	ErrInsufficientFood     = errors.New("insufficient food")
	ErrSlotOccupied         = errors.New("slot occupied")
	ErrUnknownBoost         = errors.New("unknown boost")
	ErrBoostExhausted       = errors.New("boost exhausted")
	ErrNoDefenderAtLocation = errors.New("no defender at location")
)
