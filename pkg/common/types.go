package common

const (
	BoardSize       = 9
	PiecesPerSide   = 3
	MaxSuccessors   = PiecesPerSide * 8
	ValueWin        = 8
	ValueLoss       = -ValueWin
	InitialPosition = ".../.../..."
)

type Color int8

const (
	Empty Color = iota
	White
	Black
)

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "empty"
}

// WinValue is the terminal score of a line completed by c.
func WinValue(c Color) int {
	if c == White {
		return ValueWin
	}
	return ValueLoss
}

type Board [BoardSize]Color

type Position struct {
	Board Board
	Turn  Color
}

// NewPosition returns the empty board with first to move.
func NewPosition(first Color) Position {
	return Position{Turn: first}
}
