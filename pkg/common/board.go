package common

import (
	"errors"
	"fmt"
	"strings"
)

var errBadBoard = errors.New("bad board")

// scoreLine scores one line. win is the color holding all three squares,
// otherwise delta is +1 for a line open only to white, -1 for a line open
// only to black and 0 for mixed or empty lines.
func scoreLine(a, b, c Color) (win Color, delta int) {
	if a != Empty && a == b && b == c {
		return a, 0
	}
	var hasWhite = a == White || b == White || c == White
	var hasBlack = a == Black || b == Black || c == Black
	if hasWhite && !hasBlack {
		return Empty, 1
	}
	if hasBlack && !hasWhite {
		return Empty, -1
	}
	return Empty, 0
}

// Evaluate scans the lines in order and stops at the first completed one,
// returning +8 for white and -8 for black. Without a win the value is the
// number of lines open to white minus the number open to black.
func (b *Board) Evaluate() (win bool, value int) {
	for _, line := range lines {
		var color, delta = scoreLine(b[line[0]], b[line[1]], b[line[2]])
		if color != Empty {
			return true, WinValue(color)
		}
		value += delta
	}
	return false, value
}

func (b *Board) CheckWin() bool {
	var win, _ = b.Evaluate()
	return win
}

// Winner returns the color of the first completed line or Empty.
func (b *Board) Winner() Color {
	for _, line := range lines {
		var color, _ = scoreLine(b[line[0]], b[line[1]], b[line[2]])
		if color != Empty {
			return color
		}
	}
	return Empty
}

func (b *Board) Count(c Color) int {
	var result = 0
	for _, cell := range b {
		if cell == c {
			result++
		}
	}
	return result
}

// Placing reports whether side still has pieces to put on the board.
func (b *Board) Placing(side Color) bool {
	return b.Count(side) < PiecesPerSide
}

func (b Board) String() string {
	var sb strings.Builder
	for sq, cell := range b {
		if sq != 0 && File(sq) == 0 {
			sb.WriteByte('/')
		}
		sb.WriteByte(cellChar(cell))
	}
	return sb.String()
}

func ParseBoard(s string) (Board, error) {
	var result Board
	var sq = 0
	for _, ch := range s {
		if ch == '/' {
			continue
		}
		if sq >= BoardSize {
			return Board{}, fmt.Errorf("%w: %q too long", errBadBoard, s)
		}
		var cell, ok = parseCell(ch)
		if !ok {
			return Board{}, fmt.Errorf("%w: %q unexpected %q", errBadBoard, s, ch)
		}
		result[sq] = cell
		sq++
	}
	if sq != BoardSize {
		return Board{}, fmt.Errorf("%w: %q too short", errBadBoard, s)
	}
	if result.Count(White) > PiecesPerSide || result.Count(Black) > PiecesPerSide {
		return Board{}, fmt.Errorf("%w: %q too many pieces", errBadBoard, s)
	}
	return result, nil
}

func NewPositionFromBoard(s string, turn Color) (Position, error) {
	var board, err = ParseBoard(s)
	if err != nil {
		return Position{}, err
	}
	return Position{Board: board, Turn: turn}, nil
}

// MoveName describes the move leading from before to after: "b2" for a
// placement, "a1-b2" for a slide.
func MoveName(before, after *Board) string {
	var from, to = -1, -1
	for sq := range before {
		if before[sq] == after[sq] {
			continue
		}
		if after[sq] == Empty {
			from = sq
		} else {
			to = sq
		}
	}
	if to == -1 {
		return "-"
	}
	if from == -1 {
		return SquareName(to)
	}
	return SquareName(from) + "-" + SquareName(to)
}
