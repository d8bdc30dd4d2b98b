package rocket

import (
	"fmt"
	"strings"
)

// Axis is one of the three orthogonal turn axes of the puzzle.
type Axis uint8

const (
	AxisX Axis = 0 // R/L
	AxisY Axis = 1 // U/D
	AxisZ Axis = 2 // F/B
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		panic(fmt.Sprintf("rocket: invalid axis %d", uint8(a)))
	}
}

// TurnMultiple is a quarter-turn count mod 4.
type TurnMultiple uint8

const (
	TurnNone TurnMultiple = 0
	TurnCW   TurnMultiple = 1
	TurnHalf TurnMultiple = 2
	TurnCCW  TurnMultiple = 3
)

// suffix returns the notation suffix for a turn multiple ("", "2" or "'").
func (t TurnMultiple) suffix() string {
	switch t {
	case TurnHalf:
		return "2"
	case TurnCCW:
		return "'"
	default:
		return ""
	}
}

// Move is a face turn: one axis plus the turn multiple of each of that
// axis's two opposite faces. It packs into a single byte as AA0PP0NN
// (axis, positive-face turn, negative-face turn).
type Move uint8

const (
	movePosShift  = 3
	moveAxisShift = 6
	moveTurnMask  = 0b00_011_011
	moveFullMask  = 0b11_011_011
)

// NewMove builds a move on the given axis. The positive multiple turns the
// R/U/F face of the axis, the negative multiple turns the L/D/B face.
func NewMove(axis Axis, positive, negative TurnMultiple) Move {
	return Move(uint8(axis)<<moveAxisShift | uint8(positive)<<movePosShift | uint8(negative))
}

// Axis returns the turn axis of the move.
func (m Move) Axis() Axis {
	return Axis(m >> moveAxisShift)
}

// Positive returns the turn multiple of the axis's positive face.
func (m Move) Positive() TurnMultiple {
	return TurnMultiple((m >> movePosShift) & 3)
}

// Negative returns the turn multiple of the axis's negative face.
func (m Move) Negative() TurnMultiple {
	return TurnMultiple(m & 3)
}

// IsIdentity reports whether the move turns neither face.
func (m Move) IsIdentity() bool {
	return m&moveTurnMask == 0
}

// IsDouble reports whether the move turns both opposite faces, which takes
// two physical turns to execute.
func (m Move) IsDouble() bool {
	return m&3 != 0 && (m>>movePosShift)&3 != 0
}

// Add composes two moves on the same axis, adding both turn multiples
// mod 4. Composing moves on different axes is a programming error and
// panics.
func (m Move) Add(other Move) Move {
	if m.Axis() != other.Axis() {
		panic(fmt.Sprintf("rocket: cannot compose move on axis %v with move on axis %v", m.Axis(), other.Axis()))
	}
	return (m + other&moveTurnMask) & moveFullMask
}

// String returns the move in standard face-turn notation, e.g. "R", "U2",
// "F'", or "R2L'" for a move turning both faces. The identity move renders
// as an empty string.
func (m Move) String() string {
	var pos, neg string
	switch m.Axis() {
	case AxisX:
		pos, neg = "R", "L"
	case AxisY:
		pos, neg = "U", "D"
	case AxisZ:
		pos, neg = "F", "B"
	}
	var b strings.Builder
	if p := m.Positive(); p != TurnNone {
		b.WriteString(pos)
		b.WriteString(p.suffix())
	}
	if n := m.Negative(); n != TurnNone {
		b.WriteString(neg)
		b.WriteString(n.suffix())
	}
	return b.String()
}

// ParseMove parses one token of standard notation: a face letter from
// R L U D F B, optionally followed by "2" (half turn) or "'" (reverse
// quarter turn).
func ParseMove(s string) (Move, error) {
	token := s
	multiple := TurnCW
	if rest, ok := strings.CutSuffix(s, "'"); ok {
		s = rest
		multiple = TurnCCW
	}
	if rest, ok := strings.CutSuffix(s, "2"); ok {
		s = rest
		multiple = TurnHalf
	}
	switch s {
	case "R":
		return NewMove(AxisX, multiple, TurnNone), nil
	case "U":
		return NewMove(AxisY, multiple, TurnNone), nil
	case "F":
		return NewMove(AxisZ, multiple, TurnNone), nil
	case "L":
		return NewMove(AxisX, TurnNone, multiple), nil
	case "D":
		return NewMove(AxisY, TurnNone, multiple), nil
	case "B":
		return NewMove(AxisZ, TurnNone, multiple), nil
	default:
		return 0, fmt.Errorf("%w: unknown move %q", ErrInvalidNotation, token)
	}
}

// ParseMoves parses a whitespace-separated move sequence.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
