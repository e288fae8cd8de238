package stategraph

import (
	"fmt"
	"strings"
)

// Facing is the direction a walker looks at. Declaration order is the
// tie-break order used by searches; it carries no domain meaning.
type Facing uint8

const (
	Up Facing = iota
	Right
	Down
	Left
)

// NumFacings is the number of Facing values.
const NumFacings = 4

// Facings lists every facing in declaration order.
var Facings = [NumFacings]Facing{Up, Right, Down, Left}

// Delta returns the (row, col) step taken when moving forward.
func (f Facing) Delta() (dr, dc int) {
	switch f {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic(fmt.Sprintf("stategraph: invalid facing %d", uint8(f)))
}

// Opposite returns the facing rotated by 180°.
func (f Facing) Opposite() Facing {
	switch f {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	panic(fmt.Sprintf("stategraph: invalid facing %d", uint8(f)))
}

// Perpendicular returns the two facings reachable by a single turn in a
// fixed order: {Left, Right} for vertical facings, {Up, Down} for
// horizontal ones.
func (f Facing) Perpendicular() [2]Facing {
	switch f {
	case Up, Down:
		return [2]Facing{Left, Right}
	case Right, Left:
		return [2]Facing{Up, Down}
	}
	panic(fmt.Sprintf("stategraph: invalid facing %d", uint8(f)))
}

// Valid reports whether f is one of the four facings.
func (f Facing) Valid() bool {
	return f < NumFacings
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// ParseFacing accepts "up/right/down/left", compass names "north/east/
// south/west" and their first letters, case-insensitively.
func ParseFacing(s string) (Facing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north", "n", "^":
		return Up, nil
	case "right", "r", "east", "e", ">":
		return Right, nil
	case "down", "d", "south", "s", "v":
		return Down, nil
	case "left", "l", "west", "w", "<":
		return Left, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFacing, s)
}
